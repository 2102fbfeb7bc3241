package driver

func isValidDriverID(id int64) bool {
	return id > 0
}

func isValidFleetID(id int64) bool {
	return id > 0
}
