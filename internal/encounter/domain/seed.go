package domain

// SeedEncounter builds the demo encounter shipped with the tracker: six
// players, three NPCs, and three monsters mid-fight at the end of round 1,
// including one already-dead monster.
func SeedEncounter() *Roster {
	return &Roster{
		Players: []*Participant{
			seedFighter("Thorin Ironbeard", "Alex"),
			{
				Name:       "Luna Starweaver",
				Kind:       KindPlayer,
				PlayerName: "Sarah",
				MaxHP:      32,
				CurrentHP:  32,
				Initiative: 14,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade:  1,
						DamageDealt:  []Tally{{Label: "Fireball", Amount: 28}},
						HealingDealt: []Tally{{Label: "Cure Wounds", Amount: 9}},
						Actions:      []string{"Cast Fireball", "Healing Word on Thorin"},
					}},
					KillingBlows: []string{"Orc Warrior", "Orc Shaman"},
				}},
			},
			{
				Name:       "Shadow",
				Kind:       KindPlayer,
				PlayerName: "Mike",
				MaxHP:      28,
				CurrentHP:  21,
				Initiative: 18,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade: 2,
						DamageDealt: []Tally{
							{Label: "Sneak Attack", Amount: 15},
							{Label: "Dagger Offhand", Amount: 4},
						},
						DamageTaken: []Tally{
							{Label: "Goblin Arrow", Amount: 5},
							{Label: "Trap Damage", Amount: 2},
						},
						HealingTaken: []Tally{{Label: "Healing Potion", Amount: 7}},
						Actions:      []string{"Hide", "Cunning Action"},
					}},
				}},
			},
			seedFighter("Reverant Tanglespur", "Gio"),
			seedFighter("Blimey", "Paul"),
			seedFighter("Quicken the Rogue", "Jon"),
		},
		NPCs: []*Participant{
			{
				Name:       "Captain Aldric",
				Kind:       KindNPC,
				Race:       "Human",
				MaxHP:      58,
				CurrentHP:  58,
				Initiative: 12,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade: 1,
						DamageDealt: []Tally{{Label: "Longsword", Amount: 10}},
						Actions:     []string{"Rally Troops", "Shield Wall"},
					}},
				}},
			},
			{
				Name:       "Elara Moonwhisper",
				Kind:       KindNPC,
				Race:       "Elf",
				MaxHP:      27,
				CurrentHP:  27,
				Initiative: 15,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade:  1,
						HealingDealt: []Tally{{Label: "Mass Cure Wounds", Amount: 15}},
						Actions:      []string{"Cast Mass Cure Wounds", "Bless Party"},
					}},
				}},
			},
			{
				Name:       "Grimjaw the Merchant",
				Kind:       KindNPC,
				Race:       "Halfling",
				MaxHP:      18,
				CurrentHP:  18,
				Initiative: 8,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						Actions: []string{"Hide behind cover", "Call for help"},
					}},
				}},
			},
		},
		Monsters: []*Participant{
			{
				Name:       "Orc Berserker",
				Kind:       KindMonster,
				MaxHP:      67,
				CurrentHP:  23,
				Initiative: 13,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade: 2,
						DamageDealt: []Tally{
							{Label: "Greataxe", Amount: 13},
							{Label: "Rage Bite", Amount: 6},
						},
						DamageTaken: []Tally{
							{Label: "Fireball", Amount: 28},
							{Label: "Battleaxe", Amount: 12},
							{Label: "Sneak Attack", Amount: 15},
						},
						Actions: []string{"Rage", "Reckless Attack"},
					}},
				}},
			},
			{
				Name:       "Ancient Red Dragon",
				Kind:       KindMonster,
				MaxHP:      546,
				CurrentHP:  546,
				Initiative: 10,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade: 1,
						DamageDealt: []Tally{{Label: "Fire Breath", Amount: 91}},
						Actions:     []string{"Fire Breath (Recharge 5-6)", "Frightful Presence"},
					}},
				}},
			},
			{
				Name:      "Goblin Archer",
				Kind:      KindMonster,
				MaxHP:     7,
				CurrentHP: 0,
				Dead:      true,
				Rounds: []RoundEntry{{
					RoundID: 1,
					AttackSets: []AttackSet{{
						AttacksMade: 1,
						DamageDealt: []Tally{{Label: "Shortbow", Amount: 5}},
						DamageTaken: []Tally{{Label: "Sneak Attack", Amount: 15}},
						Actions:     []string{"Aimed Shot"},
					}},
				}},
			},
		},
	}
}

// seedFighter stamps out the recurring fighter template from the demo data.
func seedFighter(name, playerName string) *Participant {
	return &Participant{
		Name:       name,
		Kind:       KindPlayer,
		PlayerName: playerName,
		MaxHP:      45,
		CurrentHP:  38,
		Initiative: 16,
		Rounds: []RoundEntry{{
			RoundID: 1,
			AttackSets: []AttackSet{{
				AttacksMade: 2,
				DamageDealt: []Tally{
					{Label: "Battleaxe", Amount: 12},
					{Label: "Bonus Attack", Amount: 8},
				},
				DamageTaken: []Tally{{Label: "Orc Scimitar", Amount: 7}},
				Actions:     []string{"Action Surge", "Second Wind"},
			}},
			KillingBlows: []string{"Goblin Scout"},
		}},
	}
}
