/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package require

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Checks recovered panic value or error.
type Constraint func(t assert.TestingT, v any) bool

// Value (panic or error) text should contain all the given substrings.
func Has(substr ...any) Constraint {
	return func(t assert.TestingT, v any) bool {
		text := fmt.Sprint(v)
		for _, s := range substr {
			if !assert.Contains(t, text, fmt.Sprint(s)) {
				return false
			}
		}
		return true
	}
}

// Value (panic or error) text should not contain the given substring.
func NotHas(substr any) Constraint {
	return func(t assert.TestingT, v any) bool {
		return assert.NotContains(t, fmt.Sprint(v), fmt.Sprint(substr))
	}
}

// Value (panic or error) should be an error, and one of the errors
// in its chain should match the target.
func Is(target error) Constraint {
	return func(t assert.TestingT, v any) bool {
		err, ok := v.(error)
		if !ok {
			return assert.Fail(t, fmt.Sprintf("«%#v» is not an error", v))
		}
		return assert.ErrorIs(t, err, target) //nolint:testifylint
	}
}

// None of the errors in the chain of value (panic or error) should match the target.
func NotIs(target error) Constraint {
	return func(t assert.TestingT, v any) bool {
		if err, ok := v.(error); ok {
			return assert.NotErrorIs(t, err, target) //nolint:testifylint
		}
		return true
	}
}

// Asserts that f panics and that recovered value satisfies all constraints.
func PanicsWith(t assert.TestingT, f func(), c ...Constraint) bool {
	wasPanic, recovered := func() (p bool, r any) {
		defer func() {
			if r = recover(); r != nil {
				p = true
			}
		}()
		f()
		return false, nil
	}()

	if !wasPanic {
		return assert.Fail(t, "panic expected")
	}
	return satisfies(t, recovered, c)
}

// Asserts that e is not nil and satisfies all constraints.
func ErrorWith(t assert.TestingT, e error, c ...Constraint) bool {
	if e == nil {
		return assert.Fail(t, "error expected")
	}
	return satisfies(t, e, c)
}

func satisfies(t assert.TestingT, v any, c []Constraint) bool {
	for _, constraint := range c {
		if !constraint(t, v) {
			return false
		}
	}
	return true
}
