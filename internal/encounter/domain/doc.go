// Package domain implements the combat-encounter core: the participant
// roster, the per-round combat ledger, the initiative turn sequencer, and
// the resolution engine that applies a submitted round to the roster and
// ledger.
//
// The package holds no ambient state. An encounter is an explicit value;
// all mutation goes through command methods so invariants (HP clamping,
// death flagging, initiative zeroing) are never observable mid-change.
package domain
