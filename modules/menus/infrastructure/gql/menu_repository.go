package gql

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/pkg/graphql"
)

type namedNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type menuItemNode struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Level      int        `json:"level"`
	URL        *string    `json:"url"`
	Category   *namedNode `json:"category"`
	Collection *namedNode `json:"collection"`
	Page       *struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"page"`
	Children []menuItemNode `json:"children"`
}

type mutationErrorNode struct {
	Field   *string `json:"field"`
	Message *string `json:"message"`
	Code    string  `json:"code"`
}

type errorsPayload struct {
	Errors []mutationErrorNode `json:"errors"`
}

type menuDetailsData struct {
	Menu *struct {
		ID    string         `json:"id"`
		Name  string         `json:"name"`
		Slug  string         `json:"slug"`
		Items []menuItemNode `json:"items"`
	} `json:"menu"`
}

type menuListData struct {
	Menus *struct {
		Edges []struct {
			Node struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				Slug  string `json:"slug"`
				Items []struct {
					ID string `json:"id"`
				} `json:"items"`
			} `json:"node"`
		} `json:"edges"`
		PageInfo struct {
			HasNextPage bool    `json:"hasNextPage"`
			EndCursor   *string `json:"endCursor"`
		} `json:"pageInfo"`
		TotalCount *int `json:"totalCount"`
	} `json:"menus"`
}

type menuUpdateData struct {
	MenuUpdate         *errorsPayload `json:"menuUpdate"`
	MenuItemMove       *errorsPayload `json:"menuItemMove"`
	MenuItemBulkDelete *errorsPayload `json:"menuItemBulkDelete"`
}

type MenuRepository struct {
	client graphql.Doer
}

func NewMenuRepository(client graphql.Doer) menu.Repository {
	return &MenuRepository{client: client}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toDomainLink picks the first target that is set, in the order category,
// collection, page, url.
func toDomainLink(n menuItemNode) menu.Link {
	switch {
	case n.Category != nil:
		return menu.CategoryLink{ID: n.Category.ID, Name: n.Category.Name}
	case n.Collection != nil:
		return menu.CollectionLink{ID: n.Collection.ID, Name: n.Collection.Name}
	case n.Page != nil:
		return menu.PageLink{ID: n.Page.ID, Title: n.Page.Title}
	case n.URL != nil && *n.URL != "":
		return menu.URLLink{URL: *n.URL}
	}
	return nil
}

func toDomainItems(nodes []menuItemNode) []*menu.MenuItem {
	items := make([]*menu.MenuItem, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, &menu.MenuItem{
			ID:       n.ID,
			Name:     n.Name,
			Link:     toDomainLink(n),
			Children: toDomainItems(n.Children),
		})
	}
	return items
}

func toDomainErrors(payload *errorsPayload) []menu.MutationError {
	out := []menu.MutationError{}
	if payload == nil {
		return out
	}
	for _, e := range payload.Errors {
		out = append(out, menu.MutationError{
			Field:   deref(e.Field),
			Message: deref(e.Message),
			Code:    menu.ErrorCode(e.Code),
		})
	}
	return out
}

func (r *MenuRepository) List(ctx context.Context, params *menu.ListParams) (*menu.ListResult, error) {
	vars := map[string]interface{}{"first": params.First}
	if params.After != "" {
		vars["after"] = params.After
	}
	var data menuListData
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         menuListQuery,
		OperationName: "MenuList",
		Variables:     vars,
	}, &data); err != nil {
		return nil, errors.Wrap(err, "list menus")
	}
	result := &menu.ListResult{Menus: []menu.Summary{}}
	if data.Menus == nil {
		return result, nil
	}
	for _, e := range data.Menus.Edges {
		result.Menus = append(result.Menus, menu.Summary{
			ID:        e.Node.ID,
			Name:      e.Node.Name,
			Slug:      e.Node.Slug,
			ItemCount: len(e.Node.Items),
		})
	}
	result.HasNextPage = data.Menus.PageInfo.HasNextPage
	result.EndCursor = deref(data.Menus.PageInfo.EndCursor)
	if data.Menus.TotalCount != nil {
		result.TotalCount = *data.Menus.TotalCount
	}
	return result, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*menu.Menu, error) {
	var data menuDetailsData
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         menuDetailsQuery,
		OperationName: "MenuDetails",
		Variables:     map[string]interface{}{"id": id},
	}, &data); err != nil {
		return nil, errors.Wrapf(err, "get menu %s", id)
	}
	if data.Menu == nil {
		return nil, menu.ErrMenuNotFound
	}
	return &menu.Menu{
		ID:    data.Menu.ID,
		Name:  data.Menu.Name,
		Slug:  data.Menu.Slug,
		Items: toDomainItems(data.Menu.Items),
	}, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) ([]menu.MutationError, error) {
	var data struct {
		MenuDelete *errorsPayload `json:"menuDelete"`
	}
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         menuDeleteMutation,
		OperationName: "MenuDelete",
		Variables:     map[string]interface{}{"id": id},
	}, &data); err != nil {
		return nil, errors.Wrapf(err, "delete menu %s", id)
	}
	return toDomainErrors(data.MenuDelete), nil
}

func moveVariables(moves []menu.Move) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(moves))
	for _, m := range moves {
		v := map[string]interface{}{
			"itemId":    m.ItemID,
			"parentId":  nil,
			"sortOrder": m.SortOrder,
		}
		if m.ParentID != "" {
			v["parentId"] = m.ParentID
		}
		out = append(out, v)
	}
	return out
}

func (r *MenuRepository) Update(ctx context.Context, params *menu.UpdateParams) (*menu.UpdateResult, error) {
	removeIDs := params.RemoveIDs
	if removeIDs == nil {
		removeIDs = []string{}
	}
	var data menuUpdateData
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         menuUpdateMutation,
		OperationName: "MenuUpdate",
		Variables: map[string]interface{}{
			"id":        params.ID,
			"name":      params.Name,
			"moves":     moveVariables(params.Moves),
			"removeIds": removeIDs,
		},
	}, &data); err != nil {
		return nil, errors.Wrapf(err, "update menu %s", params.ID)
	}
	return &menu.UpdateResult{
		BulkDeleteErrors: toDomainErrors(data.MenuItemBulkDelete),
		MoveErrors:       toDomainErrors(data.MenuItemMove),
		UpdateErrors:     toDomainErrors(data.MenuUpdate),
	}, nil
}

func itemInputVariables(in *menu.MenuItemInput) map[string]interface{} {
	v := map[string]interface{}{"name": in.Name}
	for key, value := range map[string]string{
		"category":   in.Category,
		"collection": in.Collection,
		"page":       in.Page,
		"url":        in.URL,
	} {
		if value != "" {
			v[key] = value
		}
	}
	return v
}

func (r *MenuRepository) CreateItem(ctx context.Context, input *menu.MenuItemCreateInput) ([]menu.MutationError, error) {
	v := itemInputVariables(&input.MenuItemInput)
	v["menu"] = input.Menu
	if input.Parent != "" {
		v["parent"] = input.Parent
	}
	var data struct {
		MenuItemCreate *errorsPayload `json:"menuItemCreate"`
	}
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         menuItemCreateMutation,
		OperationName: "MenuItemCreate",
		Variables:     map[string]interface{}{"input": v},
	}, &data); err != nil {
		return nil, errors.Wrapf(err, "create item in menu %s", input.Menu)
	}
	return toDomainErrors(data.MenuItemCreate), nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, id string, input *menu.MenuItemInput) ([]menu.MutationError, error) {
	var data struct {
		MenuItemUpdate *errorsPayload `json:"menuItemUpdate"`
	}
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         menuItemUpdateMutation,
		OperationName: "MenuItemUpdate",
		Variables: map[string]interface{}{
			"id":    id,
			"input": itemInputVariables(input),
		},
	}, &data); err != nil {
		return nil, errors.Wrapf(err, "update menu item %s", id)
	}
	return toDomainErrors(data.MenuItemUpdate), nil
}
