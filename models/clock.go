package models

import "time"

// nowFunc supplies the current time for timestamp stamping. Tests swap it out
// for deterministic clocks.
var nowFunc = time.Now
