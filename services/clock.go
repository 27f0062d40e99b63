package services

import "time"

// now supplies timestamps for persistence-side refreshes; tests swap it out.
var now = time.Now
