package levels

// The builtin campaign. Codes: 0 floor, 1 player, 2 block, 4 goal, 8 wall.

func levelOne() [][]int {
	return [][]int{
		{8, 8, 8, 8, 8, 8},
		{8, 4, 0, 2, 1, 8},
		{8, 8, 8, 0, 0, 8},
		{0, 0, 8, 8, 8, 8},
	}
}

func levelTwo() [][]int {
	return [][]int{
		{8, 8, 8, 0, 8, 8, 8, 8},
		{8, 4, 8, 8, 8, 2, 1, 8},
		{8, 2, 0, 0, 0, 0, 2, 8},
		{8, 0, 0, 0, 2, 0, 0, 8},
		{8, 8, 8, 8, 8, 8, 8, 8},
	}
}

func levelThree() [][]int {
	return [][]int{
		{0, 8, 8, 8, 8, 8, 8, 8, 8, 8, 0},
		{8, 8, 0, 0, 0, 0, 0, 0, 0, 8, 8},
		{8, 4, 2, 2, 0, 0, 2, 0, 2, 1, 8},
		{8, 2, 2, 0, 0, 0, 2, 2, 2, 2, 8},
		{8, 0, 0, 0, 0, 0, 0, 0, 2, 2, 8},
		{8, 2, 0, 0, 0, 0, 0, 0, 0, 0, 8},
		{8, 8, 0, 0, 0, 0, 0, 0, 0, 8, 8},
		{0, 8, 8, 8, 8, 8, 8, 8, 8, 8, 0},
	}
}

func levelFour() [][]int {
	return [][]int{
		{8, 8, 8, 0, 0},
		{8, 1, 8, 8, 0},
		{8, 4, 0, 8, 8},
		{8, 2, 0, 0, 8},
		{8, 0, 0, 0, 8},
		{8, 8, 8, 8, 8},
	}
}

func init() {
	Add(Level{ID: 1, Name: "First Push", Layout: levelOne()})
	Add(Level{ID: 2, Name: "Around the Bend", Layout: levelTwo()})
	Add(Level{ID: 3, Name: "The Warehouse", Layout: levelThree()})
	Add(Level{ID: 4, Name: "Tight Corner", Layout: levelFour()})
}
