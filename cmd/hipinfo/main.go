// hipinfo lists the HIP devices and every aspect and property reported for them.
//
// Example:
//
//	$ go run -tags hip ./cmd/hipinfo -device=0
//	$ go run -tags hip ./cmd/hipinfo -json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gohal/gohal/hardware"
	"github.com/gohal/gohal/hip"
	"github.com/gohal/gohal/rterror"
	"github.com/gohal/gohal/settings"
	"github.com/janpfeifer/must"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/encoding/protojson"
	"k8s.io/klog/v2"
)

var (
	flagJSON   = flag.Bool("json", false, "Output the device descriptions as JSON.")
	flagDevice = flag.Int("device", -1, "Index of the device to describe. If negative, all devices are described.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	s := settings.Get()
	applyDebugLevel(s.DebugLevel)

	backend := hip.NewBackend(hip.Config{Settings: s})
	manager := backend.HardwareManager()
	target := backend.Target()
	fmt.Printf("%s backend (target %q, %s): %d device(s)\n",
		backend.Name(), target.Name, backend.HardwarePlatform(), manager.NumDevices())
	if libPath, err := hip.FindLibrary(); err == nil {
		fmt.Printf("HIP runtime library: %s\n", libPath)
	} else {
		klog.V(1).Infof("HIP runtime library not found: %v", err)
	}

	first, last := 0, manager.NumDevices()
	if *flagDevice >= 0 {
		first, last = *flagDevice, *flagDevice+1
	}
	for index := first; index < last; index++ {
		ctx := manager.Device(index)
		if ctx == nil {
			// Invalid index: the error was registered in the error channel.
			break
		}
		id := manager.DeviceID(index)
		if *flagJSON {
			must.M(printJSON(os.Stdout, ctx))
		} else {
			printTable(os.Stdout, id, ctx)
		}
	}

	if err := backend.Destroy(); err != nil {
		klog.Errorf("Failed to destroy the HIP backend: %+v", err)
	}
	if rterror.Default.NumErrors() > 0 {
		os.Exit(1)
	}
}

// applyDebugLevel sets klog verbosity from ACPP_DEBUG_LEVEL, unless -v was given.
func applyDebugLevel(level int) {
	if level <= 0 {
		return
	}
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "v" {
			explicit = true
		}
	})
	if explicit {
		return
	}
	must.M(flag.Set("v", strconv.Itoa(level)))
}

// printJSON prints the protojson description of the device.
func printJSON(out io.Writer, ctx hardware.Context) error {
	desc, err := hardware.Describe(ctx)
	if err != nil {
		return err
	}
	blob, err := protojson.MarshalOptions{Multiline: true}.Marshal(desc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", blob)
	return err
}

// printTable prints the device information, aspects and properties as a table.
func printTable(out io.Writer, id hardware.DeviceID, ctx hardware.Context) {
	data := [][]string{
		{"Device", id.String()},
		{"Name", ctx.DeviceName()},
		{"Vendor", ctx.VendorName()},
		{"Architecture", ctx.DeviceArch()},
		{"Driver version", ctx.DriverVersion()},
		{"Profile", ctx.Profile()},
		{"Type", deviceType(ctx)},
		{"Max kernel concurrency", strconv.Itoa(ctx.MaxKernelConcurrency())},
		{"Max memcpy concurrency", strconv.Itoa(ctx.MaxMemcpyConcurrency())},
	}
	for _, aspect := range hardware.AspectValues() {
		data = append(data, []string{aspect.String(), strconv.FormatBool(ctx.Has(aspect))})
	}
	for _, prop := range hardware.UintPropertyValues() {
		data = append(data, []string{prop.String(), strconv.FormatUint(ctx.Property(prop), 10)})
	}
	for _, prop := range hardware.UintListPropertyValues() {
		data = append(data, []string{prop.String(), fmt.Sprint(ctx.ListProperty(prop))})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"PROPERTY", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("\t")
	table.AppendBulk(data)
	table.Render()
	_, _ = fmt.Fprintln(out)
}

func deviceType(ctx hardware.Context) string {
	if ctx.IsCPU() {
		return "CPU"
	}
	return "GPU"
}
