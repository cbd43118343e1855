// Package cli implements the shopdesk command line with cobra.
//
// Commands call the driving ports installed with SetServices; they never
// reach the store directly. Store errors are printed as their message.
package cli
