// internal/game/game.go
package game

import (
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/crazytens/crazytens/internal/models"
)

// Status is the lifecycle state of a game session.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusOngoing  Status = "ONGOING"
	StatusGameOver Status = "GAME_OVER"
)

// OnGameEndFunc handles a finished game: broadcasting final results,
// unregistering the session, etc.
type OnGameEndFunc func(gameID, winnerID uuid.UUID, scoresDec map[string]int)

// CrazyTensGame holds the entire state for a single two-player session
// in memory. Each session is a single sequential state machine: every
// exported method fully validates and applies (or rejects) one action
// under the session mutex before the next is admitted. Independent
// sessions share no mutable state. The engine keeps no internal timers;
// turn timeouts and forced forfeits belong to an external supervisor
// driving Forfeit.
type CrazyTensGame struct {
	ID uuid.UUID

	Config              BaseConfig
	ForfeitOnDisconnect bool

	Players     []*models.Player
	DrawPile    []models.Card
	DiscardPile []models.Card

	Status             Status
	CurrentPlayerIndex int
	ForcedSuit         models.Suit
	DrawsThisTurn      int

	// skipPending marks that the next turn advance is consumed by a
	// skip play, leaving the turn with the current player.
	skipPending bool

	// roundLead is the seat that led the current round; a stalemate tie
	// redeals with the same lead.
	roundLead int

	Scores *ScoreTracker

	Mu sync.Mutex

	// BroadcastStateFn sends the public snapshot to all observers. Nil
	// disables broadcasting (tests drive the engine directly).
	BroadcastStateFn func(st PublicState)

	// BroadcastHandFn sends one player their private hand.
	BroadcastHandFn func(playerID uuid.UUID, hand PrivateHand)

	// OnGameEnd is invoked once when the session reaches GAME_OVER.
	OnGameEnd OnGameEndFunc
}

// NewCrazyTensGame builds a waiting session for the given rank table
// and decimal target score.
func NewCrazyTensGame(cfg BaseConfig, targetScoreDec int) *CrazyTensGame {
	id, _ := uuid.NewRandom()
	if targetScoreDec <= 0 {
		targetScoreDec = DefaultTargetScore
	}
	return &CrazyTensGame{
		ID:     id,
		Config: cfg,
		Status: StatusWaiting,
		Scores: NewScoreTracker(cfg.ID, targetScoreDec),
	}
}

// AddPlayer seats a new player or restores the connection of a seated
// one. The second seat filling up deals the first round and moves the
// session to ONGOING.
func (g *CrazyTensGame) AddPlayer(p *models.Player) error {
	g.Mu.Lock()
	for _, seated := range g.Players {
		if seated.ID == p.ID {
			seated.Conn = p.Conn
			seated.Connected = true
			log.Infof("game %s: player %s reconnected", g.ID, p.ID)
			g.Mu.Unlock()
			g.syncAll()
			return nil
		}
	}
	if g.Status != StatusWaiting || len(g.Players) >= 2 {
		g.Mu.Unlock()
		return newGameError(ErrTurnOrderViolation, "game %s is not accepting players", g.ID)
	}

	g.Players = append(g.Players, p)
	g.Scores.Add(p.ID, 0)
	log.Infof("game %s: player %s seated (%d/2)", g.ID, p.ID, len(g.Players))

	if len(g.Players) == 2 {
		g.dealRound(0)
		g.Status = StatusOngoing
		log.Infof("game %s: both seats filled, round dealt, game ongoing", g.ID)
	}
	g.Mu.Unlock()
	g.syncAll()
	return nil
}

// dealRound shuffles a fresh full deck, deals each seat a hand, flips
// the initial discard and resets the per-round turn state. A wildcard
// flip is cycled to the bottom of the draw pile, so no round opens in a
// forced-suit state nobody chose; a pile holding nothing but wildcards
// opens on one anyway, with forcedSuit unset. Assumes lock is held.
func (g *CrazyTensGame) dealRound(leadIndex int) {
	deck := BuildDeck(g.Config)
	ShuffleDeck(deck)

	for _, p := range g.Players {
		p.Hand = append([]models.Card{}, deck[:g.Config.HandSize]...)
		deck = deck[g.Config.HandSize:]
	}
	g.DrawPile = deck
	g.DiscardPile = nil

	// Bounded by one pass over the pile: if every remaining card is
	// the wildcard rank, the last flip stands with no forced suit.
	for i, n := 0, len(g.DrawPile); i < n; i++ {
		top := g.DrawPile[0]
		g.DrawPile = g.DrawPile[1:]
		if top.Rank == g.Config.WildcardRank && i < n-1 {
			g.DrawPile = append(g.DrawPile, top)
			continue
		}
		g.DiscardPile = []models.Card{top}
		break
	}

	g.ForcedSuit = ""
	g.DrawsThisTurn = 0
	g.skipPending = false
	g.CurrentPlayerIndex = leadIndex
	g.roundLead = leadIndex
}

// SubmitAction validates and applies one action for one player. Any
// returned error is a rejection that left the visible state unchanged,
// with the single documented exception of DeckExhausted, which settles
// the round as a stalemate (see applyDraw).
func (g *CrazyTensGame) SubmitAction(playerID uuid.UUID, action models.GameAction) error {
	g.Mu.Lock()
	err := g.applyAction(playerID, action)
	g.Mu.Unlock()

	if err == nil || KindOf(err) == ErrDeckExhausted {
		g.syncAll()
	}
	return err
}

// applyAction routes one submitted action. Assumes lock is held.
func (g *CrazyTensGame) applyAction(playerID uuid.UUID, action models.GameAction) error {
	switch g.Status {
	case StatusGameOver:
		return newGameError(ErrGameAlreadyOver, "game %s is over", g.ID)
	case StatusOngoing:
	default:
		return newGameError(ErrTurnOrderViolation, "game %s has not started", g.ID)
	}

	seat := g.seatOf(playerID)
	if seat < 0 {
		return newGameError(ErrTurnOrderViolation, "player %s is not seated in game %s", playerID, g.ID)
	}
	if seat != g.CurrentPlayerIndex {
		return newGameError(ErrTurnOrderViolation, "it is not player %s's turn", playerID)
	}

	switch action.Type {
	case models.ActionPlay:
		return g.applyPlay(seat, action)
	case models.ActionDraw:
		return g.applyDraw(seat)
	case models.ActionPass:
		g.advanceTurn()
		return nil
	}
	return newGameError(ErrInvalidPlay, "unknown action type %q", action.Type)
}

// applyPlay validates a PLAY fully, then mutates: the card moves from
// hand to discard top, forcedSuit is set (wildcard) or cleared, a skip
// play marks the opponent's turn, and the win condition is checked
// before the turn advances. Assumes lock is held.
func (g *CrazyTensGame) applyPlay(seat int, action models.GameAction) error {
	player := g.Players[seat]
	if action.Card == nil {
		return newGameError(ErrInvalidPlay, "PLAY requires a card")
	}
	card := *action.Card
	if !player.HasCard(card) {
		return newGameError(ErrInvalidPlay, "card %s is not in hand", card.ID())
	}

	top := g.topCard()
	if !IsLegalPlay(card, top, g.ForcedSuit, g.Config) {
		return newGameError(ErrInvalidPlay, "card %s cannot be played on %s", card.ID(), top.ID())
	}

	isWildcard := card.Rank == g.Config.WildcardRank
	if isWildcard && !action.ChosenSuit.IsValid() {
		return newGameError(ErrMissingChosenSuit, "wildcard play requires a chosen suit")
	}

	// Validation complete; mutate.
	g.removeFromHand(player, card)
	g.DiscardPile = append(g.DiscardPile, card)

	if isWildcard {
		g.ForcedSuit = action.ChosenSuit
	} else {
		g.ForcedSuit = ""
	}
	if card.Rank == g.Config.SkipRank {
		g.skipPending = true
	}
	g.DrawsThisTurn = 0

	log.Debugf("game %s: player %s played %s", g.ID, player.ID, card.ID())

	if len(player.Hand) == 0 {
		g.settleRound(seat)
		return nil
	}
	g.advanceTurn()
	return nil
}

// applyDraw moves one card from the draw pile into the acting hand,
// replenishing the draw pile from the discard pile (minus its top card)
// when empty. DeckExhausted is the one rejection that also transitions
// state: with no cards left to draw even after replenishment, the round
// settles as a stalemate so the session cannot wedge.
// Assumes lock is held.
func (g *CrazyTensGame) applyDraw(seat int) error {
	if g.DrawsThisTurn >= MaxDrawsPerTurn {
		return newGameError(ErrDrawLimitExceeded, "already drew %d cards this turn", g.DrawsThisTurn)
	}

	if len(g.DrawPile) == 0 {
		g.replenishDrawPile()
	}
	if len(g.DrawPile) == 0 {
		log.Infof("game %s: draw pile exhausted, settling round as stalemate", g.ID)
		g.settleStalemate()
		return newGameError(ErrDeckExhausted, "no cards left to draw")
	}

	card := g.DrawPile[0]
	g.DrawPile = g.DrawPile[1:]
	player := g.Players[seat]
	player.Hand = append(player.Hand, card)
	g.DrawsThisTurn++

	log.Debugf("game %s: player %s drew a card (%d this turn, %d left)",
		g.ID, player.ID, g.DrawsThisTurn, len(g.DrawPile))
	return nil
}

// replenishDrawPile reshuffles the discard pile, excluding the current
// top card, into a fresh draw pile. Bounded by the remaining deck size;
// never blocks. Assumes lock is held.
func (g *CrazyTensGame) replenishDrawPile() {
	if len(g.DiscardPile) <= 1 {
		return
	}
	topIdx := len(g.DiscardPile) - 1
	recycled := append([]models.Card{}, g.DiscardPile[:topIdx]...)
	g.DiscardPile = g.DiscardPile[topIdx:]
	ShuffleDeck(recycled)
	g.DrawPile = recycled
	log.Infof("game %s: reshuffled %d discard(s) into the draw pile", g.ID, len(recycled))
}

// advanceTurn hands the turn to the opponent unless their skip is
// pending, in which case the skip is consumed and the turn stays.
// Draw allowance resets either way. Assumes lock is held.
func (g *CrazyTensGame) advanceTurn() {
	if g.skipPending {
		g.skipPending = false
		log.Debugf("game %s: skip consumed, turn stays with seat %d", g.ID, g.CurrentPlayerIndex)
	} else {
		g.CurrentPlayerIndex = 1 - g.CurrentPlayerIndex
	}
	g.DrawsThisTurn = 0
}

// settleRound scores a hand that just emptied: the opponent's remaining
// hand penalty accrues to the acting player. At or past the target the
// session ends; below it a fresh round is dealt with the round winner
// leading and cumulative scores retained. Assumes lock is held.
func (g *CrazyTensGame) settleRound(winnerSeat int) {
	winner := g.Players[winnerSeat]
	opponent := g.Players[1-winnerSeat]

	penalty := HandPenalty(opponent.Hand, g.Config)
	g.Scores.Add(winner.ID, penalty)
	log.Infof("game %s: player %s emptied their hand, scoring %d from opponent (total %d)",
		g.ID, winner.ID, penalty, g.Scores.Score(winner.ID))

	g.finishOrRedeal(winnerSeat)
}

// settleStalemate scores an exhausted deck: the seat holding the lower
// hand penalty scores the opponent's penalty; a tie scores nothing.
// Assumes lock is held.
func (g *CrazyTensGame) settleStalemate() {
	p0 := HandPenalty(g.Players[0].Hand, g.Config)
	p1 := HandPenalty(g.Players[1].Hand, g.Config)

	switch {
	case p0 < p1:
		g.Scores.Add(g.Players[0].ID, p1)
		g.finishOrRedeal(0)
	case p1 < p0:
		g.Scores.Add(g.Players[1].ID, p0)
		g.finishOrRedeal(1)
	default:
		// Dead heat: redeal with the same lead, nobody scores.
		g.finishOrRedeal(g.roundLead)
	}
}

// finishOrRedeal transitions to GAME_OVER when a cumulative score has
// met the target, otherwise deals the next round with leadSeat leading.
// Assumes lock is held.
func (g *CrazyTensGame) finishOrRedeal(leadSeat int) {
	if winnerID, done := g.Scores.ReachedTarget(); done {
		g.endGame(winnerID)
		return
	}
	g.dealRound(leadSeat)
	log.Infof("game %s: new round dealt, seat %d leads", g.ID, leadSeat)
}

// endGame marks the session terminal and reports the result once.
// Assumes lock is held.
func (g *CrazyTensGame) endGame(winnerID uuid.UUID) {
	if g.Status == StatusGameOver {
		return
	}
	g.Status = StatusGameOver
	log.Infof("game %s: over, winner %s, scores %v", g.ID, winnerID, g.Scores.ScoresDec())

	if g.OnGameEnd != nil {
		go g.OnGameEnd(g.ID, winnerID, g.Scores.ScoresDec())
	}
}

// Forfeit ends the session in favor of the opponent. It is the hook for
// the external supervisor (turn timeouts, abandoned games); calling it
// always leaves the session in the terminal state.
func (g *CrazyTensGame) Forfeit(playerID uuid.UUID) {
	g.Mu.Lock()
	if g.Status == StatusGameOver {
		g.Mu.Unlock()
		return
	}
	seat := g.seatOf(playerID)
	winnerID := uuid.Nil
	if seat >= 0 && len(g.Players) == 2 {
		winnerID = g.Players[1-seat].ID
	}
	log.Infof("game %s: player %s forfeits", g.ID, playerID)
	g.endGame(winnerID)
	g.Mu.Unlock()
	g.syncAll()
}

// HandleDisconnect marks a seat disconnected. With ForfeitOnDisconnect
// set, a disconnect mid-game forfeits; otherwise the seat may reconnect
// and the session stays as it was.
func (g *CrazyTensGame) HandleDisconnect(playerID uuid.UUID) {
	g.Mu.Lock()
	player := g.playerByID(playerID)
	if player == nil || !player.Connected {
		g.Mu.Unlock()
		return
	}
	player.Connected = false
	player.Conn = nil
	log.Infof("game %s: player %s disconnected", g.ID, playerID)
	forfeit := g.ForfeitOnDisconnect && g.Status == StatusOngoing
	g.Mu.Unlock()

	if forfeit {
		g.Forfeit(playerID)
		return
	}
	g.syncAll()
}

// LegalPlaysFor returns the advisory set of playable cards for one
// seat. It calls the same validator the session enforces, so it can
// never diverge from what SubmitAction will accept.
func (g *CrazyTensGame) LegalPlaysFor(playerID uuid.UUID) []models.Card {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	player := g.playerByID(playerID)
	if player == nil || g.Status != StatusOngoing || len(g.DiscardPile) == 0 {
		return nil
	}
	return LegalPlays(player.Hand, g.topCard(), g.ForcedSuit, g.Config)
}

// topCard returns the top of the discard pile. Assumes lock is held and
// the pile is non-empty (guaranteed once ONGOING).
func (g *CrazyTensGame) topCard() models.Card {
	return g.DiscardPile[len(g.DiscardPile)-1]
}

// removeFromHand deletes one card from a hand. Assumes lock is held and
// the card present.
func (g *CrazyTensGame) removeFromHand(p *models.Player, card models.Card) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// seatOf returns the seat index of a player, or -1. Assumes lock held.
func (g *CrazyTensGame) seatOf(playerID uuid.UUID) int {
	for i, p := range g.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// playerByID returns the seated player, or nil. Assumes lock held.
func (g *CrazyTensGame) playerByID(playerID uuid.UUID) *models.Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// syncAll pushes the current public snapshot to every observer and each
// private hand to its owner. Snapshots are value copies taken under the
// lock; the callbacks run without it. Must be called without the lock.
func (g *CrazyTensGame) syncAll() {
	if g.BroadcastStateFn == nil && g.BroadcastHandFn == nil {
		return
	}

	g.Mu.Lock()
	st := g.publicStateLocked()
	hands := make(map[uuid.UUID]PrivateHand, len(g.Players))
	for _, p := range g.Players {
		hands[p.ID] = PrivateHand{Hand: append([]models.Card{}, p.Hand...)}
	}
	g.Mu.Unlock()

	if g.BroadcastStateFn != nil {
		g.BroadcastStateFn(st)
	}
	if g.BroadcastHandFn != nil {
		for id, hand := range hands {
			g.BroadcastHandFn(id, hand)
		}
	}
}
