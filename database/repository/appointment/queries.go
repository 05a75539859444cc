// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medibook/models"
)

// dayWindow returns the inclusive string bounds covering one calendar day of
// canonical naive timestamps. Lexicographic order on the canonical layout
// matches chronological order, so string range queries are safe.
func dayWindow(date string) (string, string) {
	return date + "T00:00:00", date + "T23:59:59"
}

func (r *mongoAppointmentRepo) findAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListScheduledByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	lo, hi := dayWindow(date)
	filter := bson.M{
		"doctor_id":  doctorID,
		"status":     models.StatusScheduled,
		"start_time": bson.M{"$gte": lo, "$lte": hi},
	}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
}

func (r *mongoAppointmentRepo) ListScheduledByPatientAndDate(ctx context.Context, patientID, date string) ([]models.Appointment, error) {
	lo, hi := dayWindow(date)
	filter := bson.M{
		"patient_id": patientID,
		"status":     models.StatusScheduled,
		"start_time": bson.M{"$gte": lo, "$lte": hi},
	}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
}

func (r *mongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	filter := bson.M{"doctor_id": doctorID}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}))
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	filter := bson.M{"patient_id": patientID}
	return r.findAll(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}))
}

func (r *mongoAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}}))
}

func (r *mongoAppointmentRepo) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *mongoAppointmentRepo) CountScheduledFrom(ctx context.Context, from models.LocalTime) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{
		"status":     models.StatusScheduled,
		"start_time": bson.M{"$gte": from.String()},
	}
	return r.coll.CountDocuments(ctx, filter)
}
