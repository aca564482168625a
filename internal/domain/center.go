package domain

// VisibilityScope controls what a request may see and do. The head
// center sees every center's data; a branch sees only its own.
type VisibilityScope string

const (
	ScopeHead   VisibilityScope = "head"
	ScopeBranch VisibilityScope = "branch"
)

// CenterContext is the scoping identity a request executes under. It is
// passed explicitly into every service call, never inferred from ambient
// request state.
type CenterContext struct {
	CenterID string
	Scope    VisibilityScope
}

func (c CenterContext) IsHead() bool {
	return c.Scope == ScopeHead
}

// CanCreateDomestic reports whether the center may create domestic
// bookings. Only the head center holds that permission; every center may
// create international bookings.
func (c CenterContext) CanCreateDomestic() bool {
	return c.IsHead()
}
