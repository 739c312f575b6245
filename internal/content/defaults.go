package content

// DefaultTemplateID identifies the synthesized fallback enemy.
const DefaultTemplateID = "training_dummy"

// DefaultTemplate is spawned when a zone has no usable content.
func DefaultTemplate() EnemyTemplate {
	return EnemyTemplate{
		ID:        DefaultTemplateID,
		Name:      "Training Dummy",
		Level:     1,
		MaxHealth: 30,
		ExpBase:   10,
	}
}

// DefaultRule is the single rule synthesized when a zone defines none.
func DefaultRule() SpawnRule {
	return SpawnRule{
		TemplateID: DefaultTemplateID,
		Budget:     3,
		RespawnMs:  5000,
		Slots:      []int{100, 200, 300},
	}
}

// Default returns the degraded content used until a real load succeeds.
//
// Postcondition: Returns a non-nil ZoneContent with no rules, so RulesFor
// always yields the default rule.
func Default(zoneID string) *ZoneContent {
	return &ZoneContent{
		ZoneID:     zoneID,
		Templates:  map[string]EnemyTemplate{DefaultTemplateID: DefaultTemplate()},
		DropTables: map[string]DropTable{},
	}
}
