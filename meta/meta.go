// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played concurrently.
const GO_ROUTINES = 4

// NUM_GAMES defines the number of games per agent config.
const NUM_GAMES = 10

// MAX_MOVES caps the length of a single game.
const MAX_MOVES = 20000

// OUT_DIR is where experiment records are written.
const OUT_DIR = "results"
