// pkg/gridmap/connectivity.go
package gridmap

// IsConnected проверяет, что из origin достижимы все свободные клетки сетки.
// Обход в ширину по четырём направлениям. Занятый origin даёт false.
func IsConnected(g *Grid, origin Cell) (bool, error) {
	blocked, err := g.IsBlocked(origin)
	if err != nil {
		return false, err
	}
	if blocked {
		return false, nil
	}

	visited := make([][]bool, g.size)
	for row := range visited {
		visited[row] = make([]bool, g.size)
	}
	visited[origin.Row][origin.Col] = true
	reached := 1

	queue := []Cell{origin}
	head := 0
	for head < len(queue) {
		current := queue[head]
		head++
		for _, d := range NeighborDirections {
			next := current.Add(d)
			if !g.isFree(next) || visited[next.Row][next.Col] {
				continue
			}
			visited[next.Row][next.Col] = true
			reached++
			queue = append(queue, next)
		}
	}

	return reached == g.size*g.size-g.BlockedCount(), nil
}
