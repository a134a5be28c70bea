package gpr

import "errors"

var (
	// ErrParse indicates a malformed gene-product rule (unbalanced
	// parentheses, dangling operator, empty group).
	ErrParse = errors.New("gpr: malformed rule")
	// ErrNoOperands indicates a geometric mean over zero values.
	ErrNoOperands = errors.New("gpr: geometric mean needs at least one operand")
	// ErrDuplicateReaction indicates a reaction added to a Ruleset twice.
	ErrDuplicateReaction = errors.New("gpr: duplicate reaction")
)
