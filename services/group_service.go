package services

import (
	"context"
	"errors"
	"fmt"

	"diveshop-backend/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GroupService assembles groups with their nested leader, course, and member
// objects.
type GroupService struct {
	DB *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{DB: db}
}

type DiverSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CourseSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MemberView struct {
	ID    string       `json:"id"`
	Role  string       `json:"role"`
	Diver DiverSummary `json:"diver"`
}

type GroupView struct {
	models.Group
	Leader  *DiverSummary  `json:"leader"`
	Course  *CourseSummary `json:"course"`
	Members []MemberView   `json:"members"`
}

type memberRow struct {
	ID      string
	Role    string
	DiverID string
	Name    string
}

func (s *GroupService) loadMembers(groupID string) ([]MemberView, error) {
	var rows []memberRow
	err := s.DB.
		Table("group_members AS gm").
		Select("gm.id, gm.role, d.id AS diver_id, d.name").
		Joins("JOIN divers d ON gm.diver_id = d.id").
		Where("gm.group_id = ?", groupID).
		Order("gm.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]MemberView, 0, len(rows))
	for _, r := range rows {
		members = append(members, MemberView{
			ID:    r.ID,
			Role:  r.Role,
			Diver: DiverSummary{ID: r.DiverID, Name: r.Name},
		})
	}
	return members, nil
}

// assembleGroup runs the fixed set of three supplementary lookups for one
// group concurrently and joins them before the row is returned. A failed
// lookup leaves that field null/empty; it never propagates.
func (s *GroupService) assembleGroup(group models.Group) GroupView {
	view := GroupView{Group: group, Members: []MemberView{}}

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if group.LeaderID == nil {
			return nil
		}
		var diver models.Diver
		if err := s.DB.First(&diver, "id = ?", *group.LeaderID).Error; err == nil {
			view.Leader = &DiverSummary{ID: diver.ID, Name: diver.Name}
		}
		return nil
	})

	g.Go(func() error {
		if group.CourseID == nil {
			return nil
		}
		var course models.Course
		if err := s.DB.First(&course, "id = ?", *group.CourseID).Error; err == nil {
			view.Course = &CourseSummary{ID: course.ID, Name: course.Name, Price: course.Price}
		}
		return nil
	})

	g.Go(func() error {
		if members, err := s.loadMembers(group.ID); err == nil {
			view.Members = members
		}
		return nil
	})

	_ = g.Wait()
	return view
}

// ListGroups issues the primary query (newest first), then fans the
// supplementary lookups out per row. Only a primary-query failure aborts.
func (s *GroupService) ListGroups() ([]GroupView, error) {
	var groups []models.Group
	if err := s.DB.Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve groups: %w", err)
	}

	views := make([]GroupView, len(groups))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)
	for i := range groups {
		i := i
		g.Go(func() error {
			views[i] = s.assembleGroup(groups[i])
			return nil
		})
	}
	_ = g.Wait()
	return views, nil
}

type GroupInput struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	LeaderID    *string `json:"leader_id"`
	CourseID    *string `json:"course_id"`
	Days        *int    `json:"days"`
	Description string  `json:"description"`
}

func (s *GroupService) CreateGroup(input GroupInput) (GroupView, error) {
	if input.Name == "" {
		return GroupView{}, errors.New("validation: name is required")
	}

	group := models.Group{
		Name:        input.Name,
		Type:        input.Type,
		LeaderID:    input.LeaderID,
		CourseID:    input.CourseID,
		Days:        input.Days,
		Description: input.Description,
	}
	if err := s.DB.Create(&group).Error; err != nil {
		return GroupView{}, fmt.Errorf("failed to create group: %w", err)
	}

	// A fresh group has no members; the nested objects start empty.
	return GroupView{Group: group, Members: []MemberView{}}, nil
}

func (s *GroupService) AddMember(groupID, diverID, role string) (MemberView, error) {
	if diverID == "" {
		return MemberView{}, errors.New("validation: diver_id is required")
	}

	member := models.GroupMember{GroupID: groupID, DiverID: diverID, Role: role}
	if err := s.DB.Create(&member).Error; err != nil {
		return MemberView{}, fmt.Errorf("failed to add member: %w", err)
	}

	var diver models.Diver
	view := MemberView{ID: member.ID, Role: member.Role, Diver: DiverSummary{ID: diverID}}
	if err := s.DB.First(&diver, "id = ?", diverID).Error; err == nil {
		view.Diver.Name = diver.Name
	}
	return view, nil
}

// RemoveMember deletes exactly that membership row; siblings and the group
// itself stay untouched.
func (s *GroupService) RemoveMember(memberID string) error {
	res := s.DB.Where("id = ?", memberID).Delete(&models.GroupMember{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove member: %w", res.Error)
	}
	return nil
}

type ItineraryEntry struct {
	ID         string   `json:"id"`
	GroupID    string   `json:"group_id"`
	DayNumber  int      `json:"day_number"`
	DiveSiteID *string  `json:"dive_site_id"`
	Notes      string   `json:"notes"`
	SiteName   *string  `json:"site_name"`
	Location   *string  `json:"location"`
	MaxDepth   *float64 `json:"max_depth"`
	Difficulty *string  `json:"difficulty"`
}

func (s *GroupService) itineraryQuery() *gorm.DB {
	return s.DB.
		Table("group_dive_itinerary AS gdi").
		Select("gdi.id, gdi.group_id, gdi.day_number, gdi.dive_site_id, gdi.notes, " +
			"ds.name AS site_name, ds.location, ds.max_depth, ds.difficulty").
		Joins("LEFT JOIN dive_sites ds ON gdi.dive_site_id = ds.id")
}

func (s *GroupService) GetItinerary(groupID string) ([]ItineraryEntry, error) {
	entries := []ItineraryEntry{}
	err := s.itineraryQuery().
		Where("gdi.group_id = ?", groupID).
		Order("gdi.day_number ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve itinerary: %w", err)
	}
	return entries, nil
}

// UpsertItinerary keeps at most one entry per (group, day_number):
// an unused day inserts, an existing day updates in place.
func (s *GroupService) UpsertItinerary(groupID string, dayNumber int, diveSiteID *string, notes string) (ItineraryEntry, error) {
	var entry ItineraryEntry

	if dayNumber == 0 {
		return entry, errors.New("validation: day_number is required")
	}

	var rowID string
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.GroupItinerary
		err := tx.Where("group_id = ? AND day_number = ?", groupID, dayNumber).First(&existing).Error
		switch {
		case err == nil:
			rowID = existing.ID
			return tx.Model(&existing).
				Select("dive_site_id", "notes").
				Updates(map[string]interface{}{"dive_site_id": diveSiteID, "notes": notes}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := models.GroupItinerary{
				GroupID:    groupID,
				DayNumber:  dayNumber,
				DiveSiteID: diveSiteID,
				Notes:      notes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			rowID = row.ID
			return nil
		default:
			return err
		}
	})
	if txErr != nil {
		return entry, fmt.Errorf("failed to save itinerary entry: %w", txErr)
	}

	if err := s.itineraryQuery().Where("gdi.id = ?", rowID).Scan(&entry).Error; err != nil {
		return entry, fmt.Errorf("failed to reload itinerary entry: %w", err)
	}
	return entry, nil
}
