//go:build unit

package commands

var RestaurantFromSnapshot = restaurantFromSnapshot
