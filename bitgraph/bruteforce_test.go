package bitgraph_test

// bruteForceDistances computes BFS distances from src over adj (a plain
// adjacency list, dense integer ids), independent of the bit-gossip engine,
// for use as a cross-check oracle in property and scenario tests. Modeled
// after the queue/visited walk lvlath's bfs package runs over core.Graph,
// adapted here to operate directly on dense int ids instead of string
// vertex keys.
func bruteForceDistances(n int, adj [][]int, src int) []int {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if dist[w] == -1 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
		}
	}
	return dist
}
