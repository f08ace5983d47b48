package controllers

import (
	"encoding/json"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/phealthcare/healthcare-api/builder"
	"github.com/phealthcare/healthcare-api/db"
	"github.com/phealthcare/healthcare-api/middleware"
	"github.com/phealthcare/healthcare-api/models"
	"github.com/phealthcare/healthcare-api/utils"
)

var userSearchableColumns = []string{"email"}

var userFilterableFields = builder.FieldMap{
	"email":  "email",
	"role":   "role",
	"status": "status",
}

var userSortableFields = builder.FieldMap{
	"email":     "email",
	"role":      "role",
	"status":    "status",
	"createdAt": "created_at",
}

// uploadProfilePhoto pushes an optional multipart file to cloudinary and
// returns the hosted URL, or "" when no file was sent.
func uploadProfilePhoto(c *fiber.Ctx, folder string) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil
	}
	return uploadFormFile(fileHeader, folder)
}

func uploadFormFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	publicID := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	return utils.UploadToCloudinary(file, publicID, folder)
}

// CreateAdmin registers an admin: one transaction creates the User row and
// the Admin profile row, so both exist afterward or neither does.
func CreateAdmin(c *fiber.Ctx) error {
	type payload struct {
		Password string       `json:"password"`
		Admin    models.Admin `json:"admin"`
	}

	body := new(payload)
	if err := json.Unmarshal([]byte(c.FormValue("data")), body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse payload")
	}
	if body.Password == "" || body.Admin.Email == "" {
		return utils.NewApiError(fiber.StatusBadRequest, "Email and password are required")
	}

	photoURL, err := uploadProfilePhoto(c, "admins")
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to upload profile photo")
	}
	if photoURL != "" {
		body.Admin.ProfilePhoto = photoURL
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    body.Admin.Email,
			Password: string(hashed),
			Role:     models.RoleAdmin,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&body.Admin).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to create admin")
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Admin created successfully!", nil, body.Admin)
}

// CreateDoctor mirrors CreateAdmin for the doctor profile.
func CreateDoctor(c *fiber.Ctx) error {
	type payload struct {
		Password string        `json:"password"`
		Doctor   models.Doctor `json:"doctor"`
	}

	body := new(payload)
	if err := json.Unmarshal([]byte(c.FormValue("data")), body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse payload")
	}
	if body.Password == "" || body.Doctor.Email == "" {
		return utils.NewApiError(fiber.StatusBadRequest, "Email and password are required")
	}

	photoURL, err := uploadProfilePhoto(c, "doctors")
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to upload profile photo")
	}
	if photoURL != "" {
		body.Doctor.ProfilePhoto = photoURL
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    body.Doctor.Email,
			Password: string(hashed),
			Role:     models.RoleDoctor,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&body.Doctor).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to create doctor")
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Doctor created successfully!", nil, body.Doctor)
}

// CreatePatient mirrors CreateAdmin for the patient profile. Open route:
// patients register themselves.
func CreatePatient(c *fiber.Ctx) error {
	type payload struct {
		Password string         `json:"password"`
		Patient  models.Patient `json:"patient"`
	}

	body := new(payload)
	if err := json.Unmarshal([]byte(c.FormValue("data")), body); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse payload")
	}
	if body.Password == "" || body.Patient.Email == "" {
		return utils.NewApiError(fiber.StatusBadRequest, "Email and password are required")
	}

	photoURL, err := uploadProfilePhoto(c, "patients")
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to upload profile photo")
	}
	if photoURL != "" {
		body.Patient.ProfilePhoto = photoURL
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    body.Patient.Email,
			Password: string(hashed),
			Role:     models.RolePatient,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&body.Patient).Error
	})
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to create patient")
	}

	return utils.SendResponse(c, fiber.StatusCreated, "Patient created successfully!", nil, body.Patient)
}

// GetAllUsers lists identity records with search, filters and pagination.
func GetAllUsers(c *fiber.Ctx) error {
	filters := utils.PickQuery(c, []string{"email", "role", "status"})

	var users []models.User
	qb := builder.New(db.DB.Model(&models.User{})).
		Search(c.Query("searchTerm"), userSearchableColumns).
		Filter(filters, userFilterableFields)

	total, err := qb.Count()
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to count users")
	}

	err = qb.Sort(c.Query("sortBy"), c.Query("sortOrder"), userSortableFields, "created_at").
		Paginate(c.Query("page"), c.Query("limit")).
		Preload("Admin").Preload("Doctor").Preload("Patient").
		Find(&users)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return utils.SendResponse(c, fiber.StatusOK, "Users retrieved successfully!", qb.Meta(total), users)
}

// ChangeProfileStatus toggles a user between ACTIVE, BLOCKED and DELETED.
func ChangeProfileStatus(c *fiber.Ctx) error {
	type statusInput struct {
		Status models.UserStatus `json:"status"`
	}

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	switch input.Status {
	case models.StatusActive, models.StatusBlocked, models.StatusDeleted:
	default:
		return utils.NewApiError(fiber.StatusBadRequest, "Invalid status value")
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "User not found")
	}

	if err := db.DB.Model(&user).Update("status", input.Status).Error; err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to change status")
	}

	return utils.SendResponse(c, fiber.StatusOK, "User status changed successfully!", nil, user)
}

// profileStore is the fetch/update contract each profile kind implements,
// replacing per-role if-chains with a dispatch table.
type profileStore struct {
	fetch  func(tx *gorm.DB, email string) (interface{}, error)
	update func(tx *gorm.DB, email string, data []byte) (interface{}, error)
}

var profileStores = map[models.UserRole]profileStore{
	models.RoleSuperAdmin: adminProfileStore,
	models.RoleAdmin:      adminProfileStore,
	models.RoleDoctor: {
		fetch: func(tx *gorm.DB, email string) (interface{}, error) {
			var doctor models.Doctor
			err := tx.Preload("DoctorSpecialities.Specialities").
				Where("email = ? AND is_deleted = ?", email, false).First(&doctor).Error
			return &doctor, err
		},
		update: func(tx *gorm.DB, email string, data []byte) (interface{}, error) {
			var patch models.Doctor
			if err := json.Unmarshal(data, &patch); err != nil {
				return nil, err
			}
			patch.ID, patch.Email = "", ""
			var doctor models.Doctor
			if err := tx.Where("email = ? AND is_deleted = ?", email, false).First(&doctor).Error; err != nil {
				return nil, err
			}
			err := tx.Model(&doctor).Updates(patch).Error
			return &doctor, err
		},
	},
	models.RolePatient: {
		fetch: func(tx *gorm.DB, email string) (interface{}, error) {
			var patient models.Patient
			err := tx.Preload("PatientHealthData").Preload("MedicalReports").
				Where("email = ? AND is_deleted = ?", email, false).First(&patient).Error
			return &patient, err
		},
		update: func(tx *gorm.DB, email string, data []byte) (interface{}, error) {
			var patch models.Patient
			if err := json.Unmarshal(data, &patch); err != nil {
				return nil, err
			}
			patch.ID, patch.Email = "", ""
			var patient models.Patient
			if err := tx.Where("email = ? AND is_deleted = ?", email, false).First(&patient).Error; err != nil {
				return nil, err
			}
			err := tx.Model(&patient).Updates(patch).Error
			return &patient, err
		},
	},
}

var adminProfileStore = profileStore{
	fetch: func(tx *gorm.DB, email string) (interface{}, error) {
		var admin models.Admin
		err := tx.Where("email = ? AND is_deleted = ?", email, false).First(&admin).Error
		return &admin, err
	},
	update: func(tx *gorm.DB, email string, data []byte) (interface{}, error) {
		var patch models.Admin
		if err := json.Unmarshal(data, &patch); err != nil {
			return nil, err
		}
		patch.ID, patch.Email = "", ""
		var admin models.Admin
		if err := tx.Where("email = ? AND is_deleted = ?", email, false).First(&admin).Error; err != nil {
			return nil, err
		}
		err := tx.Model(&admin).Updates(patch).Error
		return &admin, err
	},
}

// GetMyProfile returns the identity record merged with the role's profile.
func GetMyProfile(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.Where("email = ? AND status = ?", middleware.AuthEmail(c), models.StatusActive).
		First(&user).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "User not found")
	}

	store, ok := profileStores[user.Role]
	if !ok {
		return utils.NewApiError(fiber.StatusInternalServerError, "Unknown user role")
	}

	profile, err := store.fetch(db.DB, user.Email)
	if err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "Profile not found")
	}

	return utils.SendResponse(c, fiber.StatusOK, "My profile retrieved successfully!", nil, fiber.Map{
		"id":                 user.ID,
		"email":              user.Email,
		"role":               user.Role,
		"status":             user.Status,
		"needPasswordChange": user.NeedPasswordChange,
		"profile":            profile,
	})
}

// UpdateMyProfile applies a partial update to the caller's profile record,
// dispatched by role. Accepts an optional replacement profile photo.
func UpdateMyProfile(c *fiber.Ctx) error {
	var user models.User
	if err := db.DB.Where("email = ? AND status = ?", middleware.AuthEmail(c), models.StatusActive).
		First(&user).Error; err != nil {
		return utils.NewApiError(fiber.StatusNotFound, "User not found")
	}

	store, ok := profileStores[user.Role]
	if !ok {
		return utils.NewApiError(fiber.StatusInternalServerError, "Unknown user role")
	}

	data := []byte(c.FormValue("data"))
	if len(data) == 0 {
		data = c.Body()
	}

	var patch map[string]interface{}
	if err := json.Unmarshal(data, &patch); err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse payload")
	}

	if photoURL, err := uploadProfilePhoto(c, "profiles"); err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to upload profile photo")
	} else if photoURL != "" {
		patch["profilePhoto"] = photoURL
	}

	merged, err := json.Marshal(patch)
	if err != nil {
		return utils.NewApiError(fiber.StatusBadRequest, "Cannot parse payload")
	}

	profile, err := store.update(db.DB, user.Email, merged)
	if err != nil {
		return utils.NewApiError(fiber.StatusInternalServerError, "Failed to update profile")
	}

	return utils.SendResponse(c, fiber.StatusOK, "My profile updated successfully!", nil, profile)
}
