package api

type medicationInput struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Times        string `json:"times"`
	Quantity     string `json:"quantity"`
	Instructions string `json:"instructions"`
}

type doseInput struct {
	TimeSlot string `json:"time_slot"`
}

type appointmentInput struct {
	Doctor     string `json:"doctor"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
	Telehealth bool   `json:"telehealth"`
}

type progressInput struct {
	Delta int `json:"delta"`
}
