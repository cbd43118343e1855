// Package services implements the driving port interfaces.
// Services contain the account, session and catalog rules and
// orchestrate calls to driven ports (adapters).
//
// Services never touch SQL; they only see the driven store interfaces.
package services
