package facts

// Facts is everything one decode extracts before the document is
// discarded. The rule engine reads only this.
type Facts struct {
	PlayerFlags  NameFlagMap
	ToolUnlocks  NameFlagMap
	CrestUnlocks NameFlagMap
	Collectables NameCountMap
	Quests       QuestSet
	SceneEvents  SceneEventSet
	Kills        NameCountMap
	Counters     map[string]int
}

// Empty returns a Facts with every collection allocated and empty, the
// state a failed decode resets to.
func Empty() *Facts {
	return &Facts{
		PlayerFlags:  NameFlagMap{},
		ToolUnlocks:  NameFlagMap{},
		CrestUnlocks: NameFlagMap{},
		Collectables: NameCountMap{},
		Quests:       QuestSet{},
		SceneEvents:  SceneEventSet{},
		Kills:        NameCountMap{},
		Counters:     map[string]int{},
	}
}
