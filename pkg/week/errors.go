package week

import "errors"

// ErrNotWholeWeeks is returned when a duration given to AddDuration or
// SubDuration is not an exact multiple of seven days.
var ErrNotWholeWeeks = errors.New("week: must add only whole weeks")
