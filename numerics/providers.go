package numerics

import "github.com/pratik-a/safe-numerics/numerics/policy"

// Default promotes natively and returns arithmetic errors.
type Default struct{}

// Policies implements policy.Provider.
func (Default) Policies() policy.Set { return policy.NewSet(policy.Native{}, policy.Throw{}) }

// Automatic widens results so they cannot overflow where a wider kind exists,
// and returns arithmetic errors.
type Automatic struct{}

// Policies implements policy.Provider.
func (Automatic) Policies() policy.Set { return policy.NewSet(policy.Automatic{}, policy.Throw{}) }

// Trapping promotes natively and panics on arithmetic errors.
type Trapping struct{}

// Policies implements policy.Provider.
func (Trapping) Policies() policy.Set { return policy.NewSet(policy.Native{}, policy.Trap{}) }

// Saturating promotes natively and clamps out-of-range results to the result
// kind's bounds. Division by zero yields zero.
type Saturating struct{}

// Policies implements policy.Provider.
func (Saturating) Policies() policy.Set { return policy.NewSet(policy.Native{}, policy.Saturate{}) }
