// Command storecli runs the interactive store menu over the catalog core.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"bestbuy/pkg/catalog"
	"bestbuy/pkg/logger"
	"bestbuy/pkg/otel"
	"bestbuy/pkg/product"
	"bestbuy/pkg/store"
)

// shippingProduct is auto-appended to every finalized cart that does not
// already contain it.
const shippingProduct = "Shipping"

var (
	log    *logger.Logger
	tracer trace.Tracer
)

func main() {
	log = logger.New(os.Stderr, logger.LevelInfo, "bestbuy", otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: "bestbuy",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		log.Error(context.Background(), "init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdown(context.Background())
	tracer = tp.Tracer("bestbuy")

	cfg := catalog.Default()
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cfg, err = catalog.Load(path)
		if err != nil {
			log.Error(context.Background(), "load catalog", "path", path, "error", err)
			os.Exit(1)
		}
	}
	s, err := catalog.Build(cfg)
	if err != nil {
		log.Error(context.Background(), "build catalog", "error", err)
		os.Exit(1)
	}

	run(s, bufio.NewScanner(os.Stdin), os.Stdout)
}

// run drives the menu loop until the user quits or input ends.
func run(s *store.Store, in *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintln(out, "**********\nStore Menu:\n__________")
		fmt.Fprintln(out, "1. List all products in store")
		fmt.Fprintln(out, "2. Show total amount in store")
		fmt.Fprintln(out, "3. Make an order")
		fmt.Fprintln(out, "4. Quit\n__________")

		choice, ok := prompt(in, out, "Please enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			fmt.Fprintln(out, "\nAvailable Products:")
			for _, p := range s.ActiveProducts() {
				fmt.Fprintln(out, p)
			}
		case "2":
			fmt.Fprintf(out, "\nTotal amount of products in store: %d\n", s.TotalQuantity())
		case "3":
			makeOrder(s, in, out)
		case "4":
			fmt.Fprintln(out, "Best Buy says Goodbye!")
			return
		default:
			fmt.Fprintln(out, "Invalid choice, please try again.")
		}
	}
}

// makeOrder builds a cart interactively and submits it.
func makeOrder(s *store.Store, in *bufio.Scanner, out io.Writer) {
	products := s.ActiveProducts()
	if len(products) == 0 {
		fmt.Fprintln(out, "No products available for order.")
		return
	}

	var cart store.Cart
	for {
		fmt.Fprintln(out, "\nAvailable Products:")
		for i, p := range products {
			fmt.Fprintf(out, "%d. %s\n", i+1, p)
		}

		choice, ok := prompt(in, out, "\nEnter the number of the product you would like to order (Enter empty text to finish): ")
		if !ok || choice == "" {
			break
		}
		idx, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a valid product number.")
			continue
		}
		if idx < 1 || idx > len(products) {
			fmt.Fprintln(out, "Invalid product number. Please select a valid option.")
			continue
		}
		p := products[idx-1]
		if !p.IsActive() {
			fmt.Fprintf(out, "Sorry, %s is currently unavailable.\n", p.Name())
			continue
		}

		quantity, ok := askQuantity(in, out, p)
		if ok && quantity > 0 {
			cart = append(cart, store.Line{Product: p, Quantity: quantity})
			fmt.Fprintf(out, "Product %s added to list!\n", p.Name())
		}
	}

	if len(cart) == 0 {
		return
	}
	cart = appendShipping(cart, products, out)
	submit(s, cart, out)
}

// askQuantity prompts for a line quantity, retrying on malformed input and
// offering reconsideration when the request exceeds stock. ok is false when
// input ended or the user gave up.
func askQuantity(in *bufio.Scanner, out io.Writer, p *product.Product) (int, bool) {
	for {
		raw, ok := prompt(in, out, fmt.Sprintf("What amount would you like for %s? ", p.Name()))
		if !ok {
			return 0, false
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number for quantity.")
			continue
		}
		if quantity == 0 {
			fmt.Fprintln(out, "Okay, order was not placed.")
			return 0, false
		}
		if p.Kind() != product.Unlimited && quantity > p.Quantity() {
			fmt.Fprintf(out, "Unfortunately, we currently have %d in stock.\n", p.Quantity())
			answer, ok := prompt(in, out, "Would you like to reconsider the amount? (yes or no): ")
			if !ok || strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				return 0, false
			}
			continue
		}
		return quantity, true
	}
}

// appendShipping adds one unit of the shipping product unless the cart
// already carries it. Cart-level policy, not a catalog invariant.
func appendShipping(cart store.Cart, products []*product.Product, out io.Writer) store.Cart {
	for _, line := range cart {
		if line.Product.Name() == shippingProduct {
			return cart
		}
	}
	for _, p := range products {
		if p.Name() == shippingProduct {
			fmt.Fprintf(out, "Adding 1 x %s to your order.\n", shippingProduct)
			return append(cart, store.Line{Product: p, Quantity: 1})
		}
	}
	return cart
}

func submit(s *store.Store, cart store.Cart, out io.Writer) {
	ctx := otel.InjectTracing(context.Background(), tracer)
	ctx, span := otel.AddSpan(ctx, "storecli.order")
	defer span.End()

	total, skipped := s.Order(ctx, cart)
	for _, line := range skipped {
		fmt.Fprintf(out, "Could not order %d x %s: %v\n", line.Quantity, line.Product.Name(), line.Reason)
		log.Warn(ctx, "order line skipped",
			"product", line.Product.Name(), "quantity", line.Quantity, "reason", line.Reason)
	}
	fmt.Fprintf(out, "\nTotal price for the order: %s dollars\n", total)
	log.Info(ctx, "order placed", "lines", len(cart), "skipped", len(skipped), "total", total)
}

// prompt prints the message and reads one trimmed line; ok is false at EOF.
func prompt(in *bufio.Scanner, out io.Writer, msg string) (string, bool) {
	fmt.Fprint(out, msg)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
