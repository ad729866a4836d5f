// pkg/gridmap/pathfinding.go
package gridmap

// HasPath проверяет, существует ли путь по свободным клеткам от start до goal.
// Сетка не изменяется. Возвращает true, как только goal извлечена из очереди.
func HasPath(g *Grid, start, goal Cell) (bool, error) {
	if err := g.check(start); err != nil {
		return false, err
	}
	if err := g.check(goal); err != nil {
		return false, err
	}

	visited := map[Cell]bool{start: true}
	queue := []Cell{start}
	head := 0
	for head < len(queue) {
		current := queue[head]
		head++
		if current == goal {
			return true, nil
		}
		for _, d := range NeighborDirections {
			next := current.Add(d)
			if !g.isFree(next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false, nil // Нет пути
}
