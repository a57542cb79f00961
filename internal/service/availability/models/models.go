package models

import (
	"bytes"
	"encoding/json"

	"github.com/Narayana2527/health-safari-apis/internal/codec"
	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// Response модели

// CheckSlotResponse результат проверки слота
type CheckSlotResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// AvailableSlot свободное время врача на дату
type AvailableSlot struct {
	DepartmentName string   `json:"departmentName"`
	Doctor         string   `json:"doctor"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
}

// BookedAppointment занятый слот с данными пациента
type BookedAppointment struct {
	DepartmentName string        `json:"departmentName"`
	DoctorName     string        `json:"doctorName"`
	Date           string        `json:"date"`
	TimeSlot       string        `json:"timeSlot"`
	PatientInfo    codec.Patient `json:"patientInfo"`
}

// OtherAppointment запись листа ожидания
type OtherAppointment struct {
	DepartmentName string        `json:"departmentName"`
	DoctorName     string        `json:"doctorName"`
	Date           string        `json:"date"`
	PatientInfo    codec.Patient `json:"patientInfo"`
}

// DoctorEntry карточка врача для справочника
// AvailableSlots - все дни врача без фильтрации по занятости
type DoctorEntry struct {
	Name           string          `json:"name"`
	Designation    string          `json:"designation"`
	Image          string          `json:"image"`
	AvailableSlots codec.DateSlots `json:"availableSlots"`
}

// DoctorSlotReport статус всех слотов врача на дату
type DoctorSlotReport struct {
	DoctorName    string          `json:"doctorName"`
	Date          string          `json:"date"`
	Slot          SlotStatuses    `json:"slot"`
	OtherPatients []codec.Patient `json:"otherPatients"`
}

// SlotStatus статус одного слота
type SlotStatus struct {
	Label       string
	Status      string // "booked" или "available"
	PatientInfo codec.Patient
}

// SlotStatuses сериализуется как объект {время: {status, patientInfo}} в порядке слотов документа
type SlotStatuses []SlotStatus

func (s SlotStatuses) MarshalJSON() ([]byte, error) {
	type entry struct {
		Status      string        `json:"status"`
		PatientInfo codec.Patient `json:"patientInfo"`
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, st := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(st.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry{Status: st.Status, PatientInfo: st.PatientInfo})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document полный документ доступности в формате хранения
type Document struct {
	doc *domain.Document
}

// NewDocument оборачивает документ для сериализации
func NewDocument(doc *domain.Document) *Document {
	return &Document{doc: doc}
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return codec.Encode(d.doc)
}
