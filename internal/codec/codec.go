package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

var (
	// ErrInvalidDocument возвращается, когда данные не соответствуют формату документа
	ErrInvalidDocument = errors.New("codec: invalid document")
)

// Ключи patientInfo в порядке, в котором их пишет форма бронирования
const (
	keyName      = "name"
	keyEmail     = "email"
	keyMobile    = "mobile"
	keyTreatment = "treatment"
	keyMessage   = "message"
)

// Decode разбирает документ в формате camp.json
// Пустой (или отсутствующий) patientInfo означает свободный слот, любой ключ - занятый
func Decode(data []byte) (*domain.Document, error) {
	var wire []wireDepartment
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := &domain.Document{Departments: make([]domain.Department, 0, len(wire))}
	for _, wd := range wire {
		dep := domain.Department{
			Name:    wd.DepartmentName,
			Doctors: make([]domain.Doctor, 0, len(wd.Doctors)),
			Extra:   wd.Extra,
		}
		for _, wdoc := range wd.Doctors {
			slots, err := fromWireDateSlots(wdoc.Slots)
			if err != nil {
				return nil, fmt.Errorf("%w: doctor %q: %v", ErrInvalidDocument, wdoc.Name, err)
			}
			dep.Doctors = append(dep.Doctors, domain.Doctor{
				Name:        wdoc.Name,
				Designation: wdoc.Designation,
				Image:       wdoc.Image,
				Slots:       slots,
				Extra:       wdoc.Extra,
			})
		}
		doc.Departments = append(doc.Departments, dep)
	}

	return doc, nil
}

// Encode сериализует документ в формат camp.json с отступом в два пробела
func Encode(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	wire := make([]wireDepartment, 0, len(doc.Departments))
	for _, dep := range doc.Departments {
		wd := wireDepartment{
			DepartmentName: dep.Name,
			Doctors:        make([]wireDoctor, 0, len(dep.Doctors)),
			Extra:          dep.Extra,
		}
		for _, d := range dep.Doctors {
			wd.Doctors = append(wd.Doctors, wireDoctor{
				Name:        d.Name,
				Designation: d.Designation,
				Image:       d.Image,
				Slots:       toWireDateSlots(d.Slots),
				Extra:       d.Extra,
			})
		}
		wire = append(wire, wd)
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return data, nil
}

// DateSlots сериализует дни врача в исходном формате (для справочника врачей)
type DateSlots []domain.DateSlot

func (s DateSlots) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWireDateSlots(s))
}

// Patient сериализует данные пациента как объект patientInfo
type Patient domain.PatientInfo

func (p Patient) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWirePatient(domain.PatientInfo(p), false))
}

func fromWireDateSlots(in []wireDateSlot) ([]domain.DateSlot, error) {
	out := make([]domain.DateSlot, 0, len(in))
	for _, ws := range in {
		day := domain.DateSlot{
			Date:        ws.Date,
			Times:       make([]domain.TimeSlot, 0, ws.Slot.len()),
			Waiting:     make([]domain.WaitingEntry, 0, len(ws.Others.OtherPatients)),
			Extra:       ws.Extra,
			OthersExtra: ws.Others.Extra,
		}
		for _, label := range ws.Slot.keys {
			entry := ws.Slot.values[label]
			ts := domain.VacantSlot(label)
			if entry.PatientInfo.len() > 0 {
				patient, err := fromWirePatient(entry.PatientInfo)
				if err != nil {
					return nil, fmt.Errorf("date %s, slot %s: %v", ws.Date, label, err)
				}
				ts = domain.BookedSlot(label, patient)
			}
			ts.Extra = entry.Extra
			day.Times = append(day.Times, ts)
		}
		for i, w := range ws.Others.OtherPatients {
			patient, err := fromWirePatient(w.PatientInfo)
			if err != nil {
				return nil, fmt.Errorf("date %s, waiting entry %d: %v", ws.Date, i, err)
			}
			day.Waiting = append(day.Waiting, domain.WaitingEntry{Patient: patient, Extra: w.Extra})
		}
		out = append(out, day)
	}
	return out, nil
}

func toWireDateSlots(in []domain.DateSlot) []wireDateSlot {
	out := make([]wireDateSlot, 0, len(in))
	for _, day := range in {
		ws := wireDateSlot{
			Date: day.Date,
			Slot: ordered[wireTimeSlot]{values: map[string]wireTimeSlot{}},
			Others: wireOthers{
				OtherPatients: make([]wirePatientHolder, 0, len(day.Waiting)),
				Extra:         day.OthersExtra,
			},
			Extra: day.Extra,
		}
		for _, ts := range day.Times {
			var info ordered[json.RawMessage]
			if ts.IsBooked() && ts.Patient != nil {
				info = toWirePatient(*ts.Patient, true)
			}
			ws.Slot.set(ts.Label, wireTimeSlot{PatientInfo: info, Extra: ts.Extra})
		}
		for _, w := range day.Waiting {
			ws.Others.OtherPatients = append(ws.Others.OtherPatients, wirePatientHolder{
				PatientInfo: toWirePatient(w.Patient, false),
				Extra:       w.Extra,
			})
		}
		out = append(out, ws)
	}
	return out
}

// fromWirePatient раскладывает patientInfo по полям
// Нестроковые значения известных ключей (объекты, массивы, null) и все неизвестные ключи
// уходят в Extra как есть
func fromWirePatient(info ordered[json.RawMessage]) (domain.PatientInfo, error) {
	var p domain.PatientInfo
	for _, key := range info.keys {
		raw, err := compact(info.values[key])
		if err != nil {
			return p, fmt.Errorf("patientInfo key %q: %v", key, err)
		}
		value, ok := scalarString(raw)
		if !ok || !isKnownPatientKey(key) {
			if p.Extra == nil {
				p.Extra = make(domain.Extra)
			}
			p.Extra[key] = raw
			continue
		}
		switch key {
		case keyName:
			p.Name = value
		case keyEmail:
			p.Email = value
		case keyMobile:
			p.Mobile = value
		case keyTreatment:
			p.Treatment = value
		case keyMessage:
			p.Message = value
		}
	}
	return p, nil
}

func isKnownPatientKey(key string) bool {
	switch key {
	case keyName, keyEmail, keyMobile, keyTreatment, keyMessage:
		return true
	}
	return false
}

// toWirePatient собирает patientInfo; пустые поля пропускаются
// Для занятого слота (booked) результат никогда не бывает пустым объектом,
// иначе при следующей загрузке слот станет свободным
func toWirePatient(p domain.PatientInfo, booked bool) ordered[json.RawMessage] {
	out := ordered[json.RawMessage]{values: map[string]json.RawMessage{}}

	known := []struct {
		key   string
		value string
	}{
		{keyName, p.Name},
		{keyEmail, p.Email},
		{keyMobile, p.Mobile},
		{keyTreatment, p.Treatment},
		{keyMessage, p.Message},
	}
	for _, f := range known {
		if f.value != "" {
			out.set(f.key, quote(f.value))
		}
	}

	extraKeys := make([]string, 0, len(p.Extra))
	for k := range p.Extra {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if _, ok := out.values[k]; ok {
			continue
		}
		out.set(k, p.Extra[k])
	}

	if booked && out.len() == 0 {
		for _, f := range known {
			out.set(f.key, quote(f.value))
		}
	}

	return out
}

// scalarString приводит значение patientInfo к строке
// Числа и bool сохраняются в их JSON-записи; для null, объектов и массивов ok == false
func scalarString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	default:
		return string(raw), true
	}
}

func quote(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
