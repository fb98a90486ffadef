package main

import (
	"fmt"
	"io"

	"classroom/pkg/order"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order item collection demos",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Order backed by a plain list with linear search",
	Args:  cobra.NoArgs,
	RunE:  runListOrder,
}

var ordersKeyedCmd = &cobra.Command{
	Use:   "keyed",
	Short: "Order backed by a collection keyed by part number",
	Args:  cobra.NoArgs,
	RunE:  runKeyedOrder,
}

var ordersObservableCmd = &cobra.Command{
	Use:   "observable",
	Short: "Order that announces added and removed items",
	Args:  cobra.NoArgs,
	RunE:  runObservableOrder,
}

type itemSpec struct {
	part  int
	desc  string
	qty   int
	price float64
}

var (
	firstBatch = []itemSpec{
		{110072674, "Widget", 400, 45.17},
		{110072675, "Sprocket", 27, 5.3},
		{101030411, "Motor", 10, 237.5},
		{110072684, "Gear", 175, 5.17},
	}
	secondBatch = []itemSpec{
		{111033401, "Nut", 10, .5},
		{127700026, "Crank", 27, 5.98},
	}
)

const (
	probePart  = 111033401
	targetPart = 127700026
)

func buildItems(specs []itemSpec) ([]*order.OrderItem, error) {
	items := make([]*order.OrderItem, 0, len(specs))
	for _, s := range specs {
		it, err := order.NewOrderItem(s.part, s.desc, s.qty, s.price)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func addAll(add func(*order.OrderItem) error, specs []itemSpec) error {
	items, err := buildItems(specs)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := add(it); err != nil {
			return fmt.Errorf("add part %d: %w", it.PartNumber, err)
		}
	}
	return nil
}

func runListOrder(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	o := order.NewOrder()
	logger.Debug("list order created", zap.String("order_id", o.ID.String()))

	if err := addAll(o.Add, firstBatch); err != nil {
		return err
	}
	order.Display(out, "Order #1", o.Items())

	if _, ok := o.Find(probePart); !ok {
		fmt.Fprintf(out, "Order #1 doesn't have #%d item.\n\n", probePart)
	}

	if err := addAll(o.Add, secondBatch); err != nil {
		return err
	}
	order.Display(out, "Order #2", o.Items())

	if _, ok := o.Find(targetPart); !ok {
		return fmt.Errorf("order #2 is missing part %d", targetPart)
	}
	fmt.Fprintf(out, "Order #2 has #%d item.\n", targetPart)
	return nil
}

func runKeyedOrder(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	o := order.NewKeyedOrder()

	if err := addAll(o.Items.Add, firstBatch); err != nil {
		return err
	}
	order.Display(out, "Order #1", o.Items.Items())

	if !o.Items.Contains(probePart) {
		fmt.Fprintf(out, "Order #1 doesn't have #%d item.\n\n", probePart)
	}

	if err := addAll(o.Items.Add, secondBatch); err != nil {
		return err
	}
	order.Display(out, "Order #2", o.Items.Items())

	if it, ok := o.Items.Get(targetPart); ok {
		fmt.Fprintf(out, "Order #2 has #%d item - price is %s$.\n", targetPart, order.FormatMoney(it.UnitPrice))
	}
	return nil
}

func runObservableOrder(cmd *cobra.Command, args []string) error {
	return observableDemo(cmd.OutOrStdout())
}

func observableDemo(out io.Writer) error {
	o := order.NewObservableOrder(out, logger.Named("orders"))

	items, err := buildItems(firstBatch)
	if err != nil {
		return err
	}
	if err := o.AddRange(items); err != nil {
		return err
	}

	extra, err := order.NewOrderItem(110072674, "Widget", 400, 45.17)
	if err != nil {
		return err
	}
	if err := o.AddItem(extra); err != nil {
		return err
	}
	return o.RemoveItem(extra)
}
