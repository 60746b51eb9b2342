package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeySession is a specific key for identifying "demo_session" contexts added to the http request
var ContextKeySession = ContextKey("demo_session")
