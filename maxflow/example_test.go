package maxflow_test

import (
	"fmt"

	"github.com/katalvlaran/flowlab/flownet"
	"github.com/katalvlaran/flowlab/maxflow"
	"github.com/katalvlaran/flowlab/mincut"
)

// ExampleEdmondsKarp demonstrates max flow on a two-path network.
// Graph:
//
//	0→1(3)→3(2)
//	0→2(2)→3(4), plus 1→2(1)
//
// Expected flow: 2 via 0→1→3, 2 via 0→2→3, 1 via 0→1→2→3 ⇒ 5
func ExampleEdmondsKarp() {
	net, _ := flownet.New(4)
	_ = net.AddEdge(0, 1, 3)
	_ = net.AddEdge(0, 2, 2)
	_ = net.AddEdge(1, 2, 1)
	_ = net.AddEdge(1, 3, 2)
	_ = net.AddEdge(2, 3, 4)

	res, _ := maxflow.EdmondsKarp(net, 0, 3)
	fmt.Println(res.FlowValue)
	// Output:
	// 5
}

// ExampleDinic computes the same network with the blocking-flow engine
// and derives the matching cut — duality makes the two values equal.
func ExampleDinic() {
	net, _ := flownet.New(4)
	_ = net.AddEdge(0, 1, 3)
	_ = net.AddEdge(0, 2, 2)
	_ = net.AddEdge(1, 2, 1)
	_ = net.AddEdge(1, 3, 2)
	_ = net.AddEdge(2, 3, 4)

	res, _ := maxflow.Dinic(net, 0, 3)
	cut, _ := mincut.MinCut(net, 0)
	fmt.Println(res.FlowValue, cut.CutCapacity)
	// Output:
	// 5 5
}
