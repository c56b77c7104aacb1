package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fieldsafe-backend/internal/config"
	"fieldsafe-backend/internal/database"
	"fieldsafe-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type BranchData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Region      string `yaml:"region"`
	Address     string `yaml:"address,omitempty"`
}

type TeamMemberData struct {
	BranchName  string `yaml:"branch_name"`
	FullName    string `yaml:"full_name"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	JobTitle    string `yaml:"job_title,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

type VehicleData struct {
	BranchName   string `yaml:"branch_name"`
	Registration string `yaml:"registration"`
	Make         string `yaml:"make,omitempty"`
	Model        string `yaml:"model,omitempty"`
	Odometer     int64  `yaml:"odometer,omitempty"`
}

type EquipmentData struct {
	BranchName string `yaml:"branch_name"`
	AssetTag   string `yaml:"asset_tag"`
	Category   string `yaml:"category,omitempty"`
	Condition  string `yaml:"condition,omitempty"`
}

// File structures
type BranchesFile struct {
	Branches []BranchData `yaml:"branches"`
}

type TeamMembersFile struct {
	TeamMembers []TeamMemberData `yaml:"team_members"`
}

type VehiclesFile struct {
	Vehicles []VehicleData `yaml:"vehicles"`
}

type EquipmentFile struct {
	Equipment []EquipmentData `yaml:"equipment"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	branches, err := loadBranches(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load branches: %w", err)
	}

	members, err := loadTeamMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}

	vehicles, err := loadVehicles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}

	equipment, err := loadEquipment(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load equipment: %w", err)
	}

	// Create branches first, everything else hangs off them
	branchMap := make(map[string]*models.Branch)
	branchCreated := 0
	for _, branchData := range branches {
		branch, created, err := createBranch(db, branchData)
		if err != nil {
			return fmt.Errorf("failed to create branch %s: %w", branchData.Name, err)
		}
		branchMap[branchData.Name] = branch
		if created {
			branchCreated++
		}
	}
	log.Printf("📋 Branches: %d created, %d total", branchCreated, len(branches))

	memberCreated := 0
	for _, memberData := range members {
		created, err := createTeamMember(db, memberData, branchMap)
		if err != nil {
			return fmt.Errorf("failed to create team member %s: %w", memberData.Email, err)
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Team members: %d created, %d total", memberCreated, len(members))

	vehicleCreated := 0
	for _, vehicleData := range vehicles {
		created, err := createVehicle(db, vehicleData, branchMap)
		if err != nil {
			return fmt.Errorf("failed to create vehicle %s: %w", vehicleData.Registration, err)
		}
		if created {
			vehicleCreated++
		}
	}
	log.Printf("📋 Vehicles: %d created, %d total", vehicleCreated, len(vehicles))

	equipmentCreated := 0
	for _, equipmentData := range equipment {
		created, err := createEquipment(db, equipmentData, branchMap)
		if err != nil {
			return fmt.Errorf("failed to create equipment %s: %w", equipmentData.AssetTag, err)
		}
		if created {
			equipmentCreated++
		}
	}
	log.Printf("📋 Equipment: %d created, %d total", equipmentCreated, len(equipment))

	return nil
}

func loadBranches(dataDir string) ([]BranchData, error) {
	var file BranchesFile
	if err := readYAML(filepath.Join(dataDir, "branches.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Branches, nil
}

func loadTeamMembers(dataDir string) ([]TeamMemberData, error) {
	var file TeamMembersFile
	if err := readYAML(filepath.Join(dataDir, "team_members.yaml"), &file); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return file.TeamMembers, nil
}

func loadVehicles(dataDir string) ([]VehicleData, error) {
	var file VehiclesFile
	if err := readYAML(filepath.Join(dataDir, "vehicles.yaml"), &file); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return file.Vehicles, nil
}

func loadEquipment(dataDir string) ([]EquipmentData, error) {
	var file EquipmentFile
	if err := readYAML(filepath.Join(dataDir, "equipment.yaml"), &file); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return file.Equipment, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createBranch(db *gorm.DB, data BranchData) (*models.Branch, bool, error) {
	var existing models.Branch
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	branch := models.Branch{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Region:      data.Region,
		Address:     data.Address,
	}
	if err := db.Create(&branch).Error; err != nil {
		return nil, false, err
	}
	return &branch, true, nil
}

func createTeamMember(db *gorm.DB, data TeamMemberData, branchMap map[string]*models.Branch) (bool, error) {
	branch, ok := branchMap[data.BranchName]
	if !ok {
		return false, fmt.Errorf("unknown branch %q", data.BranchName)
	}

	var existing models.TeamMember
	err := db.Where("branch_id = ? AND email = ?", branch.ID, data.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	status := models.EmploymentStatus(data.Status)
	if !status.IsValid() {
		status = models.EmploymentStatusActive
	}

	member := models.TeamMember{
		FullName:    data.FullName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		JobTitle:    data.JobTitle,
		Status:      status,
	}
	member.BranchID = branch.ID
	return true, db.Create(&member).Error
}

func createVehicle(db *gorm.DB, data VehicleData, branchMap map[string]*models.Branch) (bool, error) {
	branch, ok := branchMap[data.BranchName]
	if !ok {
		return false, fmt.Errorf("unknown branch %q", data.BranchName)
	}

	var existing models.Vehicle
	err := db.Where("branch_id = ? AND registration = ?", branch.ID, data.Registration).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	vehicle := models.Vehicle{
		Registration: data.Registration,
		Make:         data.Make,
		Model:        data.Model,
		Odometer:     data.Odometer,
	}
	vehicle.BranchID = branch.ID
	return true, db.Create(&vehicle).Error
}

func createEquipment(db *gorm.DB, data EquipmentData, branchMap map[string]*models.Branch) (bool, error) {
	branch, ok := branchMap[data.BranchName]
	if !ok {
		return false, fmt.Errorf("unknown branch %q", data.BranchName)
	}

	var existing models.Equipment
	err := db.Where("branch_id = ? AND asset_tag = ?", branch.ID, data.AssetTag).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	condition := models.EquipmentCondition(data.Condition)
	if !condition.IsValid() {
		condition = models.EquipmentConditionServiceable
	}

	equipment := models.Equipment{
		AssetTag:  data.AssetTag,
		Category:  data.Category,
		Condition: condition,
	}
	equipment.BranchID = branch.ID
	return true, db.Create(&equipment).Error
}
