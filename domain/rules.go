package domain

// RuleSet is the locked, validated configuration governing one session.
// It is immutable once the session enters Staging; each session owns
// its copy, so two arenas never share a legal-ship table.
type RuleSet struct {
	// Threshold is the win count (kills or goals). Zero for the race
	// variant, which has no counter to reach.
	Threshold int

	// Allowed is the legal-ship set. Empty means every ship is legal.
	Allowed ShipSet

	// DefaultShip is the corrective ship assigned on a violation.
	DefaultShip ShipID

	// SpecialShip restricts the distinguished role (the juggernaut)
	// to a single ship when set.
	SpecialShip *ShipID

	// SpecialFreq is the frequency carrying the distinguished role,
	// when the variant has one.
	SpecialFreq *Freq

	// Mystery grants cloak and stealth on activation (race only).
	Mystery bool

	// MinPlayers is the roster floor: once the count of non-spectating
	// participants drops to this value or below, the session concludes.
	// The reference variants disagree (elimination and team-goal use 1,
	// the race uses 0), so it is part of the rule set.
	MinPlayers int
}

// Restricted reports whether a legal-ship list is in force.
func (r RuleSet) Restricted() bool {
	return !r.Allowed.Empty()
}

// Verdict is the result of judging one ship against the rule set.
type Verdict int

const (
	ShipAllowed Verdict = iota
	ShipReassign
)

// Judge decides whether a ship is permitted and, if not, which ship to
// assign instead. Both violation paths (in-game change and leaving
// spectator mode) converge on the default ship.
func (r RuleSet) Judge(ship ShipID) (Verdict, ShipID) {
	if !r.Restricted() || ship == ShipSpec {
		return ShipAllowed, ship
	}
	if r.Allowed.Contains(ship) {
		return ShipAllowed, ship
	}
	return ShipReassign, r.DefaultShip
}

// JudgeSpecial judges the role-holder's ship against the single-ship
// restriction configured for the role, when there is one.
func (r RuleSet) JudgeSpecial(ship ShipID) (Verdict, ShipID) {
	if r.SpecialShip == nil || ship == ShipSpec || ship == *r.SpecialShip {
		return ShipAllowed, ship
	}
	return ShipReassign, *r.SpecialShip
}
