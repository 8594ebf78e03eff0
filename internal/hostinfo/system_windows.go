//go:build windows

package hostinfo

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"
)

type win32ComputerSystem struct {
	Manufacturer string
	Model        string
}

type win32BIOS struct {
	SerialNumber string
}

// platformSystemDetails reads the Windows product identity from the registry
// and the hardware identity from WMI. Either source failing just shortens the
// summary.
func platformSystemDetails(ctx context.Context) []kv {
	var details []kv

	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err == nil {
		if product, _, err := k.GetStringValue("ProductName"); err == nil {
			details = append(details, kv{"OS Name", strings.TrimSpace(product)})
		}
		if build, _, err := k.GetStringValue("CurrentBuildNumber"); err == nil {
			details = append(details, kv{"OS Build", build})
		}
		if ubr, _, err := k.GetIntegerValue("UBR"); err == nil {
			details = append(details, kv{"Update Build Revision", strconv.FormatUint(ubr, 10)})
		}
		k.Close()
	} else {
		slog.Debug("cannot read CurrentVersion key", "error", err)
	}

	if domain := registryDomain(); domain != "" {
		details = append(details, kv{"Domain", domain})
	}

	var cs []win32ComputerSystem
	if err := wmi.Query("SELECT Manufacturer, Model FROM Win32_ComputerSystem", &cs); err == nil && len(cs) > 0 {
		details = append(details,
			kv{"Manufacturer", strings.TrimSpace(cs[0].Manufacturer)},
			kv{"Model", strings.TrimSpace(cs[0].Model)})
	} else if err != nil {
		slog.Debug("Win32_ComputerSystem query failed", "error", err)
	}

	var bios []win32BIOS
	if err := wmi.Query("SELECT SerialNumber FROM Win32_Bios", &bios); err == nil && len(bios) > 0 {
		details = append(details, kv{"Serial Number", strings.TrimSpace(bios[0].SerialNumber)})
	}

	return details
}

func registryDomain() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SYSTEM\CurrentControlSet\Services\Tcpip\Parameters`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer k.Close()

	domain, _, err := k.GetStringValue("Domain")
	if err != nil {
		return ""
	}
	return domain
}
