package game

import "math/rand"

// Director plays a game in place of a human
type Director interface {
	/**
	 * Initialize the director with the board it will play
	 */
	Init(board BoardView, rand *rand.Rand)

	/**
	 * Decide on the next batch of actions. An empty batch means the
	 * director has nothing left to do.
	 */
	Act() []CellAction
}

// Direct lets director act on session until the game ends, or the director
// runs out of moves. step, if set, is called after every applied action.
func Direct(session *Session, director Director, rand *rand.Rand, step func(CellAction)) GameState {
	board := session.Board()
	director.Init(board, rand)

	for !session.State().IsTerminal() {
		actions := director.Act()
		if len(actions) == 0 {
			break
		}

		progress := board.NumCleared() + board.NumFlags()
		for _, action := range actions {
			session.Apply(action)
			if step != nil {
				step(action)
			}
			if session.State().IsTerminal() {
				break
			}
		}

		// A batch that changed nothing would be repeated forever
		if !session.State().IsTerminal() && progress == board.NumCleared()+board.NumFlags() {
			break
		}
	}

	return session.State()
}
