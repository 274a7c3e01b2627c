package rules

import "github.com/expr-lang/expr/vm"

// ActionFunc issues a base's build command when a rule's condition is true.
type ActionFunc func(env BaseEnv) error

// Rule is one rung of the build order: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive
// so that a base issues at most one build per tick.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}

// CategoryBuild groups every rung of the build order.
const CategoryBuild = "build"
