// Package check provides the shared types and the hook registry for
// dbtcheck validators.
//
// Each hook lives in its own subpackage and registers a HookDef in its
// init function. The CLI consults the registry for the hooks command and
// for tracking event names, so a hook's registered name is its stable
// public identifier.
package check
