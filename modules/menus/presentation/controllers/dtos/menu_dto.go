package dtos

import (
	"context"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/infrastructure/treejson"
	"github.com/iota-uz/commerce-admin/pkg/constants"
	"github.com/iota-uz/commerce-admin/pkg/intl"
)

func validationErrors(ctx context.Context, v interface{}, prefix string) (map[string]string, bool) {
	errs := intl.ValidationErrors(ctx, constants.Validate.Struct(v), func(field string) string {
		return prefix + "." + field
	})
	return errs, len(errs) == 0
}

type MenuItemDialogFormDTO struct {
	Name      string `form:"name" validate:"required,max=128"`
	LinkType  string `form:"linkType" validate:"required,oneof=category collection page link"`
	LinkValue string `form:"linkValue" validate:"required"`
}

func (d *MenuItemDialogFormDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return validationErrors(ctx, d, "Menus.Item.Errors")
}

// ToFormData must only be called after Ok.
func (d *MenuItemDialogFormDTO) ToFormData() (menu.MenuItemDialogFormData, error) {
	t, err := menu.ParseMenuItemType(d.LinkType)
	if err != nil {
		return menu.MenuItemDialogFormData{}, err
	}
	return menu.MenuItemDialogFormData{Name: d.Name, LinkType: t, LinkValue: d.LinkValue}, nil
}

type TreeOperationDTO struct {
	Type      string `form:"type" validate:"required,oneof=move remove"`
	ID        string `form:"id" validate:"required"`
	ParentID  string `form:"parentId"`
	SortOrder int    `form:"sortOrder" validate:"gte=0"`
}

// ItemPlacementDTO is one row of the editor form.
type ItemPlacementDTO struct {
	ID       string `form:"id" validate:"required"`
	ParentID string `form:"parentId"`
	Position int    `form:"position" validate:"gte=0"`
	Remove   bool   `form:"remove"`
}

// SubmitDTO is one save of the menu editor. It carries the edited tree in one
// of three shapes, tried in order: JSON in Tree, one placement row per item
// in Items, or recorded Operations.
type SubmitDTO struct {
	Name       string             `form:"name" validate:"required,max=250"`
	Operations []TreeOperationDTO `form:"operations" validate:"dive"`
	Items      []ItemPlacementDTO `form:"items" validate:"dive"`
	Tree       string             `form:"tree"`
}

func (d *SubmitDTO) Ok(ctx context.Context) (map[string]string, bool) {
	return validationErrors(ctx, d, "Menus.Details.Errors")
}

func (d *SubmitDTO) ToSubmitData() menu.SubmitData {
	ops := make([]menu.TreeOperation, 0, len(d.Operations))
	for _, op := range d.Operations {
		ops = append(ops, menu.TreeOperation{
			Type:      menu.OperationType(op.Type),
			ID:        op.ID,
			ParentID:  op.ParentID,
			SortOrder: op.SortOrder,
		})
	}
	return menu.SubmitData{Name: d.Name, Operations: ops}
}

// HasTree reports whether the post describes the whole edited tree rather
// than operations.
func (d *SubmitDTO) HasTree() bool {
	return d.Tree != "" || len(d.Items) > 0
}

// EditedTree decodes the tree from Tree or, when that is empty, arranges
// the placement rows. Bad rows fail with menu.ErrInvalidPlacement.
func (d *SubmitDTO) EditedTree() ([]*menu.MenuItem, error) {
	if d.Tree != "" {
		return treejson.UnmarshalItems([]byte(d.Tree))
	}
	placements := make([]menu.Placement, 0, len(d.Items))
	for _, it := range d.Items {
		placements = append(placements, menu.Placement{
			ID:       it.ID,
			ParentID: it.ParentID,
			Position: it.Position,
			Remove:   it.Remove,
		})
	}
	return menu.Arrange(placements)
}
