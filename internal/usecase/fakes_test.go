package usecase

import (
	"time"

	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// testDB is a detached gorm handle the fakes below never touch; it only has to
// survive WithContext.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

type fakeFacilityRepo struct {
	rooms      map[uint]*entity.Room
	receptions map[uint][]entity.Reception
}

func (f *fakeFacilityRepo) FindAllFloors(db *gorm.DB) ([]entity.Floor, error) { return nil, nil }
func (f *fakeFacilityRepo) FindAllRooms(db *gorm.DB) ([]entity.Room, error)  { return nil, nil }
func (f *fakeFacilityRepo) FindRoomByID(db *gorm.DB, id uint) (*entity.Room, error) {
	return f.rooms[id], nil
}
func (f *fakeFacilityRepo) FindAllReceptions(db *gorm.DB) ([]entity.Reception, error) {
	return nil, nil
}
func (f *fakeFacilityRepo) FindReceptionsByFloor(db *gorm.DB, floorID uint) ([]entity.Reception, error) {
	return f.receptions[floorID], nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
}

func (f *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error { return nil }
func (f *fakePatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return f.patients[id], nil
}
func (f *fakePatientRepo) FindByMedicalRecordNumber(db *gorm.DB, mrn string) (*entity.Patient, error) {
	return nil, nil
}
func (f *fakePatientRepo) Search(db *gorm.DB, query string) ([]entity.Patient, error) {
	return nil, nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.DoctorProfile
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }
func (f *fakeDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	return f.doctors[userID], nil
}
func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)  { return nil, nil }
func (f *fakeDoctorRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }
func (f *fakeDoctorRepo) Delete(db *gorm.DB, userID uuid.UUID) error              { return nil }

type fakeScheduleRepo struct {
	slots []entity.DoctorSchedule
}

func (f *fakeScheduleRepo) FindByID(db *gorm.DB, id uint) (*entity.DoctorSchedule, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	return f.slots, nil
}
func (f *fakeScheduleRepo) ReplaceWeek(db *gorm.DB, doctorID uuid.UUID, slots []entity.DoctorSchedule) error {
	return nil
}

type fakeSettingRepo struct {
	values map[string]string
}

func (f *fakeSettingRepo) Get(db *gorm.DB, key string) (*entity.Setting, error) {
	value, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{Key: key, Value: value}, nil
}
func (f *fakeSettingRepo) Upsert(db *gorm.DB, key, value string) error { return nil }

type fakeAppointmentRepo struct {
	created []entity.Appointment
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	f.created = append(f.created, *appointment)
	return nil
}
func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) CountsByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date string) ([]repository.TimeCount, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) MaxTokenNumber(db *gorm.DB, doctorID uuid.UUID, date string) (int, error) {
	return 0, nil
}
func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return nil
}

type fakeSlotRoomRepo struct {
	assignments []entity.DoctorSlotRoom
}

func (f *fakeSlotRoomRepo) Create(db *gorm.DB, assignment *entity.DoctorSlotRoom) error {
	return nil
}
func (f *fakeSlotRoomRepo) CreateBatch(db *gorm.DB, assignments []entity.DoctorSlotRoom) error {
	return nil
}
func (f *fakeSlotRoomRepo) FindByID(db *gorm.DB, id uint) (*entity.DoctorSlotRoom, error) {
	return nil, nil
}
func (f *fakeSlotRoomRepo) FindByFilter(db *gorm.DB, filter *entity.SlotRoomFilter) ([]entity.DoctorSlotRoom, error) {
	return f.assignments, nil
}
func (f *fakeSlotRoomRepo) FindForSlot(db *gorm.DB, doctorID uuid.UUID, scheduleID uint, date time.Time) (*entity.DoctorSlotRoom, error) {
	return nil, nil
}
func (f *fakeSlotRoomRepo) Update(db *gorm.DB, assignment *entity.DoctorSlotRoom) error { return nil }
func (f *fakeSlotRoomRepo) Delete(db *gorm.DB, id uint) (int64, error)                  { return 0, nil }
