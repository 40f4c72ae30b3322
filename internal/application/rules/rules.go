// Package rules composes independent business checks into one outcome.
package rules

import "context"

// Rule is a single check. It returns a *model.BusinessError when the check fails,
// or a plain error when the check itself could not be evaluated.
type Rule func(ctx context.Context) error

// Run evaluates rules in order and returns the first error. Rules after a failing
// one are never invoked.
func Run(ctx context.Context, rules ...Rule) error {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if err := rule(ctx); err != nil {
			return err
		}
	}
	return nil
}
