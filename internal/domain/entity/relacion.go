package entity

// ReferenteUsmya vincula a un referente afectivo con un usmya.
type ReferenteUsmya struct {
	ID          int `json:"id"`
	IDReferente int `json:"idReferente"`
	IDUsmya     int `json:"idUsmya"`
}

// EfectorUsmya vincula a un efector de salud con un usmya.
type EfectorUsmya struct {
	ID        int `json:"id"`
	IDEfector int `json:"idEfector"`
	IDUsmya   int `json:"idUsmya"`
}
