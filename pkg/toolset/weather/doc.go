// Package weather provides the National Weather Service toolset: active
// alerts by state and point forecasts by coordinate.
package weather
