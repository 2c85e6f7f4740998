package commands

import (
	"errors"

	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier.
// Encapsulates contact details, vehicle, and the initial rating.
//
// Example:
//
//	contact, _ := kernel.NewContact("Ivan Petrov", "+7 900 000-00-00", "ivan@example.com")
//	cmd, err := NewCreateCourierCommand(contact, courier.VehicleBike, 5.0)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
//	fmt.Printf("Registered courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	contact     kernel.Contact
	vehicleType courier.VehicleType
	rating      float64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID. Validates contact and vehicle type;
// the rating range is enforced by the aggregate constructor.
func NewCreateCourierCommand(
	contact kernel.Contact,
	vehicleType courier.VehicleType,
	rating float64,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		courierID: kernel.NewUUID(),
		rating:    rating,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContact(contact),
		command.setVehicleType(vehicleType),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated identifier for the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Contact returns the courier's contact details.
func (c CreateCourierCommand) Contact() kernel.Contact {
	return c.contact
}

// VehicleType returns the courier's vehicle.
func (c CreateCourierCommand) VehicleType() courier.VehicleType {
	return c.vehicleType
}

// Rating returns the courier's initial rating.
func (c CreateCourierCommand) Rating() float64 {
	return c.rating
}

func (c *CreateCourierCommand) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}

	c.contact = contact
	return nil
}

func (c *CreateCourierCommand) setVehicleType(vehicleType courier.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
