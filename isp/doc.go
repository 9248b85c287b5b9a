// Package isp illustrates the Interface Segregation Principle.
//
// Clients should not be forced to depend on methods they do not use. Worker is the
// fat interface: LegacyRobot has to implement Eat and Sleep just to satisfy it, and
// can only fail at run time.
//
// The adhering version splits capabilities into Workable, Eater and Sleeper. Robot
// implements only Workable; Manager asks for the narrow capability it needs.
package isp
