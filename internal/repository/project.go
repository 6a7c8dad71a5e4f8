package repository

import (
	"context"
	"sort"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with data: %+v \n", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if project.Status == "" {
		project.Status = constant.ProjectStatusNotStarted
	}

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return project, err
	}

	return project, nil
}

func (pr ProjectRepository) GetByID(ctx context.Context, tx *gorm.DB, projectID uint) (*model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetByIDForUser returns the project only when owned by userID.
func (pr ProjectRepository) GetByIDForUser(ctx context.Context, tx *gorm.DB, projectID, userID uint) (*model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Where("id = ? AND user_id = ?", projectID, userID).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (pr ProjectRepository) ListForUser(ctx context.Context, tx *gorm.DB, userID uint, skip, limit int) ([]model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	skip, limit = util.NormalizeListRange(skip, limit)

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("user_id = ?", userID).
		Order("id").
		Offset(skip).Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, projectID uint, updates map[string]any) (*model.Project, error) {
	pr.logger.Debugf("Update project %d with data: %+v \n", projectID, updates)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &project, nil
}

// BumpStatusOnCardCreate moves not_started to in_progress as a single
// conditional update, so there is no read-then-write window. Any other
// status is left alone; adding a card never regresses a project.
func (pr ProjectRepository) BumpStatusOnCardCreate(ctx context.Context, tx *gorm.DB, projectID uint) error {
	db := pr.getDB(tx)

	return db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND status = ?", projectID, constant.ProjectStatusNotStarted).
		Update("status", constant.ProjectStatusInProgress).Error
}

// RefreshStatusAfterCardDelete resets status to not_started when the
// project no longer owns any card. Runs inside the delete transaction.
func (pr ProjectRepository) RefreshStatusAfterCardDelete(ctx context.Context, tx *gorm.DB, projectID uint) error {
	db := pr.getDB(tx)

	var remaining int64
	if err := db.WithContext(ctx).Model(&model.Card{}).
		Where("project_id = ?", projectID).
		Count(&remaining).Error; err != nil {
		return err
	}

	if remaining > 0 {
		return nil
	}

	return db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		Update("status", constant.ProjectStatusNotStarted).Error
}

// AggregateTags collects the unique tags across all five payload tables
// of a project, sorted.
func (pr ProjectRepository) AggregateTags(ctx context.Context, tx *gorm.DB, projectID uint) ([]string, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	seen := map[string]struct{}{}

	collect := func(rowsTags [][]string) {
		for _, tags := range rowsTags {
			for _, t := range tags {
				if t != "" {
					seen[t] = struct{}{}
				}
			}
		}
	}

	var sms []model.SourceMaterial
	if err := db.WithContext(ctx).Select("tags").Where("project_id = ?", projectID).Find(&sms).Error; err != nil {
		return nil, err
	}
	for _, r := range sms {
		collect([][]string{r.Tags})
	}

	var questions []model.Question
	if err := db.WithContext(ctx).Select("tags").Where("project_id = ?", projectID).Find(&questions).Error; err != nil {
		return nil, err
	}
	for _, r := range questions {
		collect([][]string{r.Tags})
	}

	var insights []model.Insight
	if err := db.WithContext(ctx).Select("tags").Where("project_id = ?", projectID).Find(&insights).Error; err != nil {
		return nil, err
	}
	for _, r := range insights {
		collect([][]string{r.Tags})
	}

	var thoughts []model.Thought
	if err := db.WithContext(ctx).Select("tags").Where("project_id = ?", projectID).Find(&thoughts).Error; err != nil {
		return nil, err
	}
	for _, r := range thoughts {
		collect([][]string{r.Tags})
	}

	var claims []model.Claim
	if err := db.WithContext(ctx).Select("tags").Where("project_id = ?", projectID).Find(&claims).Error; err != nil {
		return nil, err
	}
	for _, r := range claims {
		collect([][]string{r.Tags})
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return tags, nil
}

// SetAssignment replaces the project's assignment file reference; the
// previous stored object, if any, is cleaned up best-effort.
func (pr ProjectRepository) SetAssignment(ctx context.Context, tx *gorm.DB, projectID uint, fileURL, filename string) error {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		return err
	}

	if project.AssignmentFile != "" && project.AssignmentFile != fileURL {
		pr.cleanupAttachments(ctx, project.AssignmentFile)
	}

	return db.WithContext(ctx).Model(&project).Updates(map[string]any{
		"assignment_file":     fileURL,
		"assignment_filename": filename,
	}).Error
}

func (pr ProjectRepository) ClearAssignment(ctx context.Context, tx *gorm.DB, projectID uint) error {
	return pr.SetAssignment(ctx, tx, projectID, "", "")
}

// Delete removes the project and every row it owns. Attachment objects
// referenced by the payload rows and the assignment file are deleted
// best-effort before the row transaction.
func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectID uint) error {
	pr.logger.Debugf("Delete project with projectID: %d \n", projectID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		return err
	}

	pr.cleanupAttachments(ctx, project.AssignmentFile)

	for _, cardType := range constant.CardTypes {
		payload, _ := model.PayloadForCardType(cardType)
		rows, err := payloadFilesForProject(ctx, db, payload, projectID)
		if err != nil {
			return err
		}
		for _, files := range rows {
			pr.cleanupAttachments(ctx, files)
		}
	}

	return pr.withTx(db.WithContext(ctx), func(tx *gorm.DB) error {
		owned := []any{
			&model.OutlineCardPlacement{},
			&model.OutlineSection{},
			&model.CardLink{},
			&model.Card{},
			&model.SourceMaterial{},
			&model.Question{},
			&model.Insight{},
			&model.Thought{},
			&model.Claim{},
			&model.Citation{},
		}

		for _, m := range owned {
			if err := tx.Where("project_id = ?", projectID).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.Project{}, projectID).Error
	})
}

// payloadFilesForProject reads just the files column of one payload table.
func payloadFilesForProject(ctx context.Context, db *gorm.DB, payload model.Payload, projectID uint) ([]string, error) {
	var rows []map[string]any
	if err := db.WithContext(ctx).Model(payload).Select("files").
		Where("project_id = ?", projectID).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if files, ok := row["files"].(string); ok {
			out = append(out, files)
		}
	}

	return out, nil
}
