package codec

import (
	"encoding/json"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// Структуры формата camp.json
// Extra у каждого узла хранит ключи, которые сервис не интерпретирует: их задает
// загрузчик данных, и при сохранении они пишутся обратно без изменений

type wireDepartment struct {
	DepartmentName string       `json:"departmentName"`
	Doctors        []wireDoctor `json:"doctors"`
	Extra          domain.Extra `json:"-"`
}

type wireDoctor struct {
	Name        string         `json:"name"`
	Designation string         `json:"designation"`
	Image       string         `json:"image"`
	Slots       []wireDateSlot `json:"slots"`
	Extra       domain.Extra   `json:"-"`
}

type wireDateSlot struct {
	Date   string                `json:"date"`
	Slot   ordered[wireTimeSlot] `json:"slot"`
	Others wireOthers            `json:"others"`
	Extra  domain.Extra          `json:"-"`
}

type wireOthers struct {
	OtherPatients []wirePatientHolder `json:"other-patients"`
	Extra         domain.Extra        `json:"-"`
}

type wireTimeSlot struct {
	PatientInfo ordered[json.RawMessage] `json:"patientInfo"`
	Extra       domain.Extra             `json:"-"`
}

type wirePatientHolder struct {
	PatientInfo ordered[json.RawMessage] `json:"patientInfo"`
	Extra       domain.Extra             `json:"-"`
}

func (w *wireDepartment) UnmarshalJSON(data []byte) error {
	type plain wireDepartment
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownMembers(data, "departmentName", "doctors")
	if err != nil {
		return err
	}
	*w = wireDepartment(p)
	w.Extra = extra
	return nil
}

func (w wireDepartment) MarshalJSON() ([]byte, error) {
	type plain wireDepartment
	return withMembers(plain(w), w.Extra)
}

func (w *wireDoctor) UnmarshalJSON(data []byte) error {
	type plain wireDoctor
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownMembers(data, "name", "designation", "image", "slots")
	if err != nil {
		return err
	}
	*w = wireDoctor(p)
	w.Extra = extra
	return nil
}

func (w wireDoctor) MarshalJSON() ([]byte, error) {
	type plain wireDoctor
	return withMembers(plain(w), w.Extra)
}

func (w *wireDateSlot) UnmarshalJSON(data []byte) error {
	type plain wireDateSlot
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownMembers(data, "date", "slot", "others")
	if err != nil {
		return err
	}
	*w = wireDateSlot(p)
	w.Extra = extra
	return nil
}

func (w wireDateSlot) MarshalJSON() ([]byte, error) {
	type plain wireDateSlot
	return withMembers(plain(w), w.Extra)
}

func (w *wireOthers) UnmarshalJSON(data []byte) error {
	type plain wireOthers
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownMembers(data, "other-patients")
	if err != nil {
		return err
	}
	*w = wireOthers(p)
	w.Extra = extra
	return nil
}

func (w wireOthers) MarshalJSON() ([]byte, error) {
	type plain wireOthers
	return withMembers(plain(w), w.Extra)
}

func (w *wireTimeSlot) UnmarshalJSON(data []byte) error {
	type plain wireTimeSlot
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownMembers(data, "patientInfo")
	if err != nil {
		return err
	}
	*w = wireTimeSlot(p)
	w.Extra = extra
	return nil
}

func (w wireTimeSlot) MarshalJSON() ([]byte, error) {
	type plain wireTimeSlot
	return withMembers(plain(w), w.Extra)
}

func (w *wirePatientHolder) UnmarshalJSON(data []byte) error {
	type plain wirePatientHolder
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := unknownMembers(data, "patientInfo")
	if err != nil {
		return err
	}
	*w = wirePatientHolder(p)
	w.Extra = extra
	return nil
}

func (w wirePatientHolder) MarshalJSON() ([]byte, error) {
	type plain wirePatientHolder
	return withMembers(plain(w), w.Extra)
}
