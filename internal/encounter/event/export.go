package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportHumanReadable writes the journal as indented text, one block per
// event, newest last. Payloads that fail to parse as JSON are written raw.
func ExportHumanReadable(events []Event, w io.Writer) error {
	for i, evt := range events {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeEvent(evt, w); err != nil {
			return err
		}
	}
	return nil
}

func writeEvent(evt Event, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "[%s] %s\n", evt.Timestamp.UTC().Format(time.RFC3339), evt.Type); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  seq: %d\n", evt.Seq); err != nil {
		return err
	}
	if evt.Actor != "" {
		if _, err := fmt.Fprintf(w, "  actor: %s\n", evt.Actor); err != nil {
			return err
		}
	}
	if evt.InvocationID != "" {
		if _, err := fmt.Fprintf(w, "  invocation: %s\n", evt.InvocationID); err != nil {
			return err
		}
	}
	if len(evt.PayloadJSON) == 0 {
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, evt.PayloadJSON, "  ", "  "); err != nil {
		_, werr := fmt.Fprintf(w, "  payload: %s\n", evt.PayloadJSON)
		return werr
	}
	_, err := fmt.Fprintf(w, "  payload: %s\n", pretty.String())
	return err
}
