package logging

import "context"

// NopLogger discards everything. Handy as a default in tests.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (n *NopLogger) Info(context.Context, string, ...any)  {}
func (n *NopLogger) Warn(context.Context, string, ...any)  {}
func (n *NopLogger) Error(context.Context, string, ...any) {}
func (n *NopLogger) With(...any) Logger                    { return n }
