// Package t2048 implements the rules of the 2048 sliding-tile puzzle: the
// move engine, tile spawning, the per-turn state machine and the persisted
// score ledger. Rendering helpers consume the movement trace each accepted
// move produces.
package t2048
