// Package param maps plain control values to and from the normalized [0, 1]
// domain used by hosts and automation, and hands values between threads
// without locks.
package param
