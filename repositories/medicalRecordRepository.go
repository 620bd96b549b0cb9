package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"VidaClinic/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recordDocument is the document-store shape of a clinical history:
// one document per patient, entries keyed by calendar day.
type recordDocument struct {
	PatientID string                   `bson:"_id"`
	Entries   map[string]entryDocument `bson:"entries"`
}

type entryDocument struct {
	Reason       string              `bson:"reason"`
	Symptoms     string              `bson:"symptoms"`
	Diagnosis    string              `bson:"diagnosis"`
	Vitals       *vitalSignsDocument `bson:"vitals,omitempty"`
	OrderNumbers []string            `bson:"orderNumbers,omitempty"`
}

type vitalSignsDocument struct {
	TemperatureCelsius float64 `bson:"temperatureCelsius"`
	PulseBPM           int     `bson:"pulseBpm"`
	BloodPressure      string  `bson:"bloodPressure"`
	RespiratoryRate    int     `bson:"respiratoryRate"`
}

type MedicalRecordRepository struct {
	collection *mongo.Collection
}

func NewMedicalRecordRepository(collection *mongo.Collection) *MedicalRecordRepository {
	return &MedicalRecordRepository{collection: collection}
}

// AppendEntry adds a dated entry to the patient's history, creating the
// document on first write. The $exists filter rejects a second entry for
// the same day without a read-modify-write race.
func (r *MedicalRecordRepository) AppendEntry(ctx context.Context, patientID domain.Identification, date time.Time, entry domain.RecordEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := date.Format(domain.EntryDateLayout)
	field := "entries." + key

	filter := bson.M{
		"_id": patientID.Value(),
		field: bson.M{"$exists": false},
	}
	update := bson.M{
		"$set": bson.M{field: toEntryDocument(entry)},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Upsert raced with the same-day filter: the document exists
			// and already holds an entry for this date.
			return domain.NewDuplicateEntityError("record entry", key)
		}
		return fmt.Errorf("failed to append record entry: %w", err)
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return domain.NewDuplicateEntityError("record entry", key)
	}
	return nil
}

// GetByPatient loads the full clinical history of a patient.
func (r *MedicalRecordRepository) GetByPatient(ctx context.Context, patientID domain.Identification) (domain.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc recordDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": patientID.Value()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.MedicalRecord{}, domain.NewEntityNotFoundError("medical record", patientID.Value())
		}
		return domain.MedicalRecord{}, fmt.Errorf("failed to get medical record: %w", err)
	}

	record := domain.NewMedicalRecord(patientID)
	for key, entryDoc := range doc.Entries {
		record.Entries[key] = fromEntryDocument(entryDoc)
	}
	return record, nil
}

func toEntryDocument(entry domain.RecordEntry) entryDocument {
	doc := entryDocument{
		Reason:       entry.Reason,
		Symptoms:     entry.Symptoms,
		Diagnosis:    entry.Diagnosis,
		OrderNumbers: entry.OrderNumbers,
	}
	if entry.Vitals != nil {
		doc.Vitals = &vitalSignsDocument{
			TemperatureCelsius: entry.Vitals.TemperatureCelsius,
			PulseBPM:           entry.Vitals.PulseBPM,
			BloodPressure:      entry.Vitals.BloodPressure,
			RespiratoryRate:    entry.Vitals.RespiratoryRate,
		}
	}
	return doc
}

func fromEntryDocument(doc entryDocument) domain.RecordEntry {
	entry := domain.RecordEntry{
		Reason:       doc.Reason,
		Symptoms:     doc.Symptoms,
		Diagnosis:    doc.Diagnosis,
		OrderNumbers: doc.OrderNumbers,
	}
	if doc.Vitals != nil {
		entry.Vitals = &domain.VitalSigns{
			TemperatureCelsius: doc.Vitals.TemperatureCelsius,
			PulseBPM:           doc.Vitals.PulseBPM,
			BloodPressure:      doc.Vitals.BloodPressure,
			RespiratoryRate:    doc.Vitals.RespiratoryRate,
		}
	}
	return entry
}
