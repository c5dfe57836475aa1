package gridworld

import "fmt"

// Built-in levels. Level 0 is an open room split by a single wall,
// level 1 adds rows of westward wind between the agent and the goal,
// and level 2 is a cliff walk where stepping into the hazard row ends
// the episode at a large cost.
var levels = [][]string{
	{
		"####################",
		"#                 G#",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"################## #",
		"#                  #",
		"#A                 #",
		"####################",
	},
	{
		"####################",
		"#G                 #",
		"#                  #",
		"#..................#",
		"#++++++++++++++++++#",
		"#..................#",
		"#                  #",
		"################## #",
		"#                  #",
		"#A                 #",
		"####################",
	},
	{
		"####################",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"#                  #",
		"#AXXXXXXXXXXXXXXXXG#",
		"####################",
	},
}

// NumLevels returns how many built-in levels exist
func NumLevels() int {
	return len(levels)
}

// Level returns the built-in map numbered level
func Level(level int) (*Map, error) {
	if level < 0 || level >= len(levels) {
		return nil, fmt.Errorf("level: no such level %d, have levels "+
			"[0, %d]", level, len(levels)-1)
	}
	return NewMap(fmt.Sprintf("Level %d", level), levels[level])
}
