// Package keys exposes the admin console's key management API.
package keys

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"digitflow/ent"
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"digitflow/internal/httpx/kit"
	"digitflow/internal/keygen"
	"digitflow/internal/mqx"
)

// CreateRequest controls the lifetime and binding capacity of a new key.
type CreateRequest struct {
	ExpiryMonths int  `json:"expiry_months"`
	DeviceLimit  int  `json:"device_limit"`
	NeverExpires bool `json:"never_expires"`
}

// UpdateRequest toggles a key's active flag.
type UpdateRequest struct {
	IsActive *bool `json:"is_active"`
}

// ListHandler pages access keys newest first.
//
//	@Summary      List access keys
//	@Tags         keys
//	@Security     BearerAuth
//	@Produce      json
//	@Param        limit   query  int  false  "page size"
//	@Param        offset  query  int  false  "page offset"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/keys [get]
func ListHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		pg := kit.ParsePaging(c)
		rows, err := client.AccessKey.Query().
			Order(ent.Desc(accesskey.FieldCreatedAt)).
			Limit(pg.Limit).
			Offset(pg.Offset).
			All(ctx)
		if err != nil {
			return kit.InternalError("query keys failed", err.Error())
		}

		nextOff := pg.Offset + len(rows)
		meta := kit.PageMeta{
			Limit:      pg.Limit,
			Offset:     pg.Offset,
			Count:      len(rows),
			NextOffset: &nextOff,
			HasMore:    len(rows) == pg.Limit,
		}
		if pg.WithTotal {
			if total, err := client.AccessKey.Query().Count(ctx); err == nil {
				meta.Total = &total
			}
		}
		return kit.List(c, rows, meta)
	}
}

// CreateHandler mints a new access key.
//
//	@Summary      Create access key
//	@Tags         keys
//	@Security     BearerAuth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   keys.CreateRequest  false  "key options"
//	@Success      201   {object}  map[string]interface{}
//	@Router       /api/v1/admin/keys [post]
func CreateHandler(client *ent.Client, mq mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateRequest
		_ = c.BodyParser(&req)
		months := lo.Ternary(req.ExpiryMonths > 0, req.ExpiryMonths, 12)
		limit := lo.Ternary(req.DeviceLimit > 0, req.DeviceLimit, 1)

		raw, err := keygen.New()
		if err != nil {
			return kit.InternalError("generate key failed", err.Error())
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		cr := client.AccessKey.Create().SetKey(raw).SetDeviceLimit(limit)
		if !req.NeverExpires {
			cr = cr.SetExpiresAt(time.Now().UTC().AddDate(0, months, 0))
		}
		ak, err := cr.Save(ctx)
		if err != nil {
			return kit.InternalError("create key failed", err.Error())
		}

		_ = mqx.PublishJSON(ctx, mq, mqx.KeyCreated, fiber.Map{
			"id": ak.ID, "key": ak.Key, "device_limit": ak.DeviceLimit, "expires_at": ak.ExpiresAt,
		})
		return kit.Created(c, ak)
	}
}

// UpdateHandler toggles a key active or inactive.
//
//	@Summary      Update access key
//	@Tags         keys
//	@Security     BearerAuth
//	@Accept       json
//	@Produce      json
//	@Param        id    path   string  true  "key UUID"
//	@Param        body  body   keys.UpdateRequest  true  "fields to change"
//	@Success      200   {object}  map[string]interface{}
//	@Failure      404   {object}  map[string]interface{}
//	@Router       /api/v1/admin/keys/{id} [patch]
func UpdateHandler(client *ent.Client, mq mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid key id", c.Params("id"))
		}
		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
			return kit.BadRequest("is_active required", nil)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		ak, err := client.AccessKey.UpdateOneID(id).SetIsActive(*req.IsActive).Save(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("access key not found")
		}
		if err != nil {
			return kit.InternalError("update key failed", err.Error())
		}

		if !*req.IsActive {
			_ = mqx.PublishJSON(ctx, mq, mqx.KeyRevoked, fiber.Map{"id": ak.ID, "key": ak.Key})
		}
		return kit.OK(c, ak)
	}
}

// DeleteHandler removes a key and its device bindings.
//
//	@Summary      Delete access key
//	@Tags         keys
//	@Security     BearerAuth
//	@Produce      json
//	@Param        id  path  string  true  "key UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/keys/{id} [delete]
func DeleteHandler(client *ent.Client, mq mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid key id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		ak, err := client.AccessKey.Get(ctx, id)
		if ent.IsNotFound(err) {
			return kit.NotFound("access key not found")
		}
		if err != nil {
			return kit.InternalError("query key failed", err.Error())
		}

		if _, err := client.BoundDevice.Delete().
			Where(bounddevice.HasKeyWith(accesskey.ID(id))).
			Exec(ctx); err != nil {
			return kit.InternalError("delete devices failed", err.Error())
		}
		if err := client.AccessKey.DeleteOneID(id).Exec(ctx); err != nil {
			return kit.InternalError("delete key failed", err.Error())
		}

		_ = mqx.PublishJSON(ctx, mq, mqx.KeyDeleted, fiber.Map{"id": id, "key": ak.Key})
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}

// ListDevicesHandler lists the devices bound to a key.
//
//	@Summary      List bound devices
//	@Tags         keys
//	@Security     BearerAuth
//	@Produce      json
//	@Param        id  path  string  true  "key UUID"
//	@Success      200  {object}  map[string]interface{}
//	@Router       /api/v1/admin/keys/{id}/devices [get]
func ListDevicesHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid key id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rows, err := client.BoundDevice.Query().
			Where(bounddevice.HasKeyWith(accesskey.ID(id))).
			Order(ent.Desc(bounddevice.FieldLastSeenAt)).
			All(ctx)
		if err != nil {
			return kit.InternalError("query devices failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// DeleteDeviceHandler unbinds a device, freeing its slot on the key.
//
//	@Summary      Unbind device
//	@Tags         keys
//	@Security     BearerAuth
//	@Produce      json
//	@Param        id  path  string  true  "device UUID"
//	@Success      200  {object}  map[string]string
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/devices/{id} [delete]
func DeleteDeviceHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return kit.BadRequest("invalid device id", c.Params("id"))
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		dev, err := client.BoundDevice.Query().
			Where(bounddevice.ID(id)).
			WithKey().
			Only(ctx)
		if ent.IsNotFound(err) {
			return kit.NotFound("device not found")
		}
		if err != nil {
			return kit.InternalError("query device failed", err.Error())
		}

		if err := client.BoundDevice.DeleteOneID(id).Exec(ctx); err != nil {
			return kit.InternalError("delete device failed", err.Error())
		}
		if dev.Edges.Key != nil {
			_, _ = client.AccessKey.Update().
				Where(accesskey.ID(dev.Edges.Key.ID), accesskey.DeviceCountGT(0)).
				AddDeviceCount(-1).
				Save(ctx)
		}
		return kit.OK(c, fiber.Map{"status": "deleted"})
	}
}
