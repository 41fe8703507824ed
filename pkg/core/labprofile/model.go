package labprofile

import (
	"github.com/scienceol/labprofile/pkg/repo/model"
	"github.com/scienceol/labprofile/pkg/utils"
)

type LearningItemReq struct {
	Header  *string `json:"header" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// CreateLabProfileReq uses pointers so that a missing field is told apart from "" or 0.
type CreateLabProfileReq struct {
	Title              *string            `json:"title" validate:"required"`
	Category           *model.Category    `json:"category" validate:"required,oneof=python c++ cloud" swaggertype:"string" enums:"python,c++,cloud"`
	DescriptiveTitle   *string            `json:"descriptive_title" validate:"required"`
	CourseLevel        *model.CourseLevel `json:"course_level" validate:"required,oneof=Beginner Intermediate Advanced" swaggertype:"string" enums:"Beginner,Intermediate,Advanced"`
	LabType            *model.LabType     `json:"lab_type" validate:"required,oneof='Type 1' 'Type 2' 'Type 3'" swaggertype:"string" enums:"Type 1,Type 2,Type 3"`
	AdditionalImage    *string            `json:"additional_image"`
	LearningObjectives []*LearningItemReq `json:"learning_objectives" validate:"required,dive,required"`
	LearningOutcomes   []*LearningItemReq `json:"learning_outcomes" validate:"required,dive,required"`
}

// ToModel must only be called on a request that passed validation.
func (r *CreateLabProfileReq) ToModel() *model.LabProfile {
	return &model.LabProfile{
		Title:            *r.Title,
		Category:         *r.Category,
		DescriptiveTitle: *r.DescriptiveTitle,
		CourseLevel:      *r.CourseLevel,
		LabType:          *r.LabType,
		AdditionalImage:  r.AdditionalImage,
	}
}

func (r *CreateLabProfileReq) Objectives(labProfileID int64) []*model.LearningObjective {
	return utils.FilterSlice(r.LearningObjectives, func(item *LearningItemReq) (*model.LearningObjective, bool) {
		return &model.LearningObjective{LearningItem: item.toModel(labProfileID)}, true
	})
}

func (r *CreateLabProfileReq) Outcomes(labProfileID int64) []*model.LearningOutcome {
	return utils.FilterSlice(r.LearningOutcomes, func(item *LearningItemReq) (*model.LearningOutcome, bool) {
		return &model.LearningOutcome{LearningItem: item.toModel(labProfileID)}, true
	})
}

func (i *LearningItemReq) toModel(labProfileID int64) model.LearningItem {
	return model.LearningItem{
		Header:       *i.Header,
		Content:      *i.Content,
		LabProfileID: labProfileID,
	}
}

type LearningItemResp struct {
	ID           int64  `json:"id"`
	Header       string `json:"header"`
	Content      string `json:"content"`
	LabProfileID int64  `json:"lab_profile_id"`
}

type LabProfileResp struct {
	ID                 int64               `json:"id"`
	Title              string              `json:"title"`
	Category           model.Category      `json:"category" swaggertype:"string"`
	DescriptiveTitle   string              `json:"descriptive_title"`
	CourseLevel        model.CourseLevel   `json:"course_level" swaggertype:"string"`
	LabType            model.LabType       `json:"lab_type" swaggertype:"string"`
	AdditionalImage    *string             `json:"additional_image"`
	LearningObjectives []*LearningItemResp `json:"learning_objectives"`
	LearningOutcomes   []*LearningItemResp `json:"learning_outcomes"`
}

func NewLabProfileResp(data *model.LabProfile) *LabProfileResp {
	return &LabProfileResp{
		ID:               data.ID,
		Title:            data.Title,
		Category:         data.Category,
		DescriptiveTitle: data.DescriptiveTitle,
		CourseLevel:      data.CourseLevel,
		LabType:          data.LabType,
		AdditionalImage:  data.AdditionalImage,
		LearningObjectives: utils.FilterSlice(data.LearningObjectives, func(o *model.LearningObjective) (*LearningItemResp, bool) {
			return newLearningItemResp(o.ID, o.LearningItem), true
		}),
		LearningOutcomes: utils.FilterSlice(data.LearningOutcomes, func(o *model.LearningOutcome) (*LearningItemResp, bool) {
			return newLearningItemResp(o.ID, o.LearningItem), true
		}),
	}
}

func newLearningItemResp(id int64, item model.LearningItem) *LearningItemResp {
	return &LearningItemResp{
		ID:           id,
		Header:       item.Header,
		Content:      item.Content,
		LabProfileID: item.LabProfileID,
	}
}
