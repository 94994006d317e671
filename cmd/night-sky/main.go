// Command night-sky shows what is visible in the sky for an observer: a
// terminal sky chart, moon phase and rise/set almanac, and conjunction and
// eclipse-window events, with headless JSON export.
package main

func main() {
	Execute()
}
