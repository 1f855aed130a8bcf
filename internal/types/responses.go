package types

type UserResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Hospital       string `json:"hospital"`
	Contact        string `json:"contact"`
}

type PatientResponse struct {
	ID                uint    `json:"id"`
	DoctorID          uint    `json:"doctor_id"`
	Name              string  `json:"name"`
	Age               int     `json:"age"`
	Gender            int     `json:"gender"`
	Chestpain         int     `json:"chestpain"`
	RestingBP         int     `json:"restingBP"`
	Serumcholestrol   int     `json:"serumcholestrol"`
	Fastingbloodsugar int     `json:"fastingbloodsugar"`
	Restingrelectro   int     `json:"restingrelectro"`
	Maxheartrat       int     `json:"maxheartrat"`
	Exerciseangia     int     `json:"exerciseangia"`
	Oldpeak           float64 `json:"oldpeak"`
	Slope             int     `json:"slope"`
	Noofmajor         int     `json:"noofmajor"`
	Prediction        string  `json:"prediction"`
}
