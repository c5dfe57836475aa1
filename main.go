package main

import (
	"fmt"

	"sfneuman.com/gridlearn/agent/tabular/qlearning"
	"sfneuman.com/gridlearn/environment/gridworld"
	"sfneuman.com/gridlearn/experiment"
	"sfneuman.com/gridlearn/experiment/tracker"
	"sfneuman.com/gridlearn/experiment/trackers"
	"sfneuman.com/gridlearn/render"
)

func main() {
	var seed uint64 = 192382

	// Create the cliff-walking environment
	grid, err := gridworld.Level(2)
	if err != nil {
		panic(err)
	}

	task := gridworld.NewSolve(gridworld.NewMapStart(grid), 100)
	g, _, err := gridworld.New(grid, task, 0.99, 1.0, seed)
	if err != nil {
		panic(err)
	}
	fmt.Println(g)

	// Create the learning algorithm
	args := qlearning.Config{Epsilon: 0.1, LearningRate: 0.1, Double: true}
	q, err := qlearning.New(g, args, seed)
	if err != nil {
		panic(err)
	}

	// Experiment
	var t tracker.Tracker = trackers.NewReturn("./data.bin")
	t = tracker.Register(t, g)
	e := experiment.NewOnline(g, q, 500, []tracker.Tracker{t}, nil)
	if err := e.Run(); err != nil {
		panic(err)
	}
	e.Save()

	data := tracker.LoadData("./data.bin")
	fmt.Println(data[len(data)-10:])

	// Draw the learned values and greedy actions
	if err := render.SaveValues(grid, q.Estimates(), "./values.png"); err != nil {
		panic(err)
	}
}
