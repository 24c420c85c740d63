// Package cli is the command-line front end of accountkeeper.
//
// One-shot commands (list, show, add, update, delete, labels, count) run a
// single store operation and exit. The shell command starts an interactive
// read–eval–print loop over the same store.
//
// Examples
//
//	accountkeeper add --type Local --login root --label "prod; db"
//	accountkeeper list --json
//	accountkeeper --backend file --data ~/.accountkeeper shell
//
// Unknown account ids are reported as a message; they never fail a command.
package cli
