// Package sim implements a discrete-event simulator for a single-server
// queue with exponential arrival and service processes. The simulator
// advances virtual time by firing the pending clock with the smallest
// residual lifetime, exploiting the memoryless property of the exponential
// distribution to reuse the residual lifetimes of clocks that survive a
// state transition.
package sim
