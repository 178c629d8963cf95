package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
)

// Director deduces mines and safe cells from the revealed numbers. When
// nothing can be deduced, it clicks the cell least likely to be a mine, and
// falls back on a random click before anything is revealed.
type Director struct {
	board game.BoardView
	rand  *rand.Rand

	fallback random.Director

	observations       collections.Set[*Observation]
	observationsByCell map[game.Pos]collections.Set[*Observation]
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Pos
	numMines int
	cells    collections.Set[game.Pos]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for _, cell := range sortedCells(observation.cells) {
		cells = append(cells, cell.String())
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cells, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(board game.BoardView, rand *rand.Rand) {
	director.board = board
	director.rand = rand
	director.fallback.Init(board, rand)
}

func (director *Director) Act() []game.CellAction {
	director.observe()

	actors := []func() []game.CellAction{
		director.actDeliberate,
		director.actLowestProbability,
		director.fallback.Act,
	}

	for _, actor := range actors {
		if actions := actor(); len(actions) > 0 {
			return actions
		}
	}
	return nil
}

// observe rebuilds the observations from every revealed number on the board
func (director *Director) observe() {
	director.observations = collections.Set[*Observation]{}
	director.observationsByCell = make(map[game.Pos]collections.Set[*Observation])

	board := director.board
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			cell := board.CellAt(col, row)
			if cell.IsCleared() && !cell.IsMine() {
				director.cellRevealed(game.Pos{Col: col, Row: row}, cell)
			}
		}
	}

	// Simplify/split observations
	for i := 0; i < 4; i++ {
		director.simplifyObservations()
	}
}

func (director *Director) cellRevealed(pos game.Pos, cell game.Cell) {
	origin := pos
	observation := Observation{
		origin:   &origin,
		numMines: int(cell.Value()),
		cells:    collections.Set[game.Pos]{},
	}

	for _, neighbor := range director.board.Neighbors(pos) {
		neighborCell := director.board.CellAt(neighbor.Col, neighbor.Row)
		if neighborCell.IsCleared() {
			continue
		}
		if neighborCell.IsFlagged() {
			observation.numMines--
		} else {
			observation.cells.Add(neighbor)
		}
	}

	director.addObservation(&observation)
}

func (director *Director) actDeliberate() []game.CellAction {
	var actions []game.CellAction
	seen := collections.Set[game.Pos]{}

	for _, observation := range director.sortedObservations() {
		var kind game.ClickKind
		switch {
		case observation.numMines == len(observation.cells):
			kind = game.RightClick
		case observation.numMines == 0:
			kind = game.Click
		default:
			continue
		}

		for _, cell := range sortedCells(observation.cells) {
			if seen.Contains(cell) {
				continue
			}
			seen.Add(cell)
			actions = append(actions, game.CellAction{Pos: cell, Kind: kind})
		}
	}

	return actions
}

func (director *Director) actLowestProbability() []game.CellAction {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Pos]float64)

	for observation := range director.observations {
		probability := observation.MineProbability()
		if probability < lowestProbability {
			lowestProbability = probability
		}

		for cell := range observation.cells {
			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	var lowestProbabilityCells []game.Pos
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return nil
	}

	sortPositions(lowestProbabilityCells)
	director.rand.Shuffle(len(lowestProbabilityCells), func(i, j int) {
		lowestProbabilityCells[i], lowestProbabilityCells[j] = lowestProbabilityCells[j], lowestProbabilityCells[i]
	})

	return []game.CellAction{{Pos: lowestProbabilityCells[0], Kind: game.Click}}
}

func (director *Director) simplifyObservations() {
	for _, observation := range director.sortedObservations() {
		if len(observation.cells) == 0 {
			director.removeObservation(observation)
			continue
		}
		if observation.origin == nil {
			continue
		}

		visited := collections.Set[*Observation]{}

		for cell := range observation.cells {
			for intersectingObs := range director.observationsByCell[cell] {
				if intersectingObs == observation || visited.Contains(intersectingObs) {
					continue
				}
				visited.Add(intersectingObs)

				sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)

				if isSubset {
					// The mines outside observation are in the rest of intersectingObs
					director.addObservation(&Observation{
						numMines: intersectingObs.numMines - observation.numMines,
						cells:    intersectingObs.cells.Difference(observation.cells),
					})
				} else if observation.numMines == 1 && len(sharedCells) > 1 {
					leftOnlyCells := intersectingObs.cells.Difference(sharedCells)
					occludedMines := intersectingObs.numMines - observation.numMines

					if occludedMines == len(leftOnlyCells) {
						director.addObservation(&Observation{
							numMines: occludedMines,
							cells:    leftOnlyCells,
						})
					}
				}
			}
		}
	}
}

func (director *Director) addObservation(observation *Observation) {
	// Don't add vacuous observations
	if len(observation.cells) == 0 {
		return
	}

	for cell := range observation.cells {
		for otherObs := range director.observationsByCell[cell] {
			// Don't add duplicates
			if observation.cells.Equal(otherObs.cells) {
				return
			}
		}
	}

	for cell := range observation.cells {
		cellObservations, exists := director.observationsByCell[cell]
		if !exists {
			cellObservations = collections.Set[*Observation]{}
			director.observationsByCell[cell] = cellObservations
		}
		cellObservations.Add(observation)
	}

	director.observations.Add(observation)
}

func (director *Director) removeObservation(observation *Observation) {
	director.observations.Remove(observation)

	for cell := range observation.cells {
		director.observationsByCell[cell].Remove(observation)
	}
}

// sortedObservations orders observations by their cells, so acting doesn't
// depend on map iteration order
func (director *Director) sortedObservations() []*Observation {
	observations := make([]*Observation, 0, len(director.observations))
	for observation := range director.observations {
		observations = append(observations, observation)
	}
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].String() < observations[j].String()
	})
	return observations
}

func sortedCells(cells collections.Set[game.Pos]) []game.Pos {
	positions := make([]game.Pos, 0, len(cells))
	for cell := range cells {
		positions = append(positions, cell)
	}
	sortPositions(positions)
	return positions
}

func sortPositions(positions []game.Pos) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
}
