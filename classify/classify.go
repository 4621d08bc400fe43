// Package classify assigns a process to one of the closed ProcessCategory
// buckets using a fixed, ordered keyword lookup over the case-folded name.
package classify

import (
	"strings"

	"github.com/coreprobe/sysmon/entities"
)

var gpuAiMlKeywords = []string{
	"python", "python3", "jupyter", "conda", "pytorch", "tensorflow", "torch",
	"ollama", "llama", "whisper", "stable-diffusion", "comfyui", "automatic1111",
	"onnx", "triton", "vllm", "tgi",
}

var gpuGamingKeywords = []string{
	"steam", "game", "unity", "unreal", "godot", "wine", "proton", "lutris",
	"heroic", "bottles",
}

var systemKeywords = []string{
	"init", "systemd", "kernel", "kthread", "ksoftirq", "kworker", "rcu_",
	"migration", "watchdog", "cpuhp", "idle", "swapper", "launchd", "system",
	"csrss", "smss", "wininit", "services", "lsass", "svchost", "dwm", "ntoskrnl",
}

var serviceKeywords = []string{
	"cron", "crond", "atd", "cupsd", "avahi", "dbus", "udev", "polkit", "udisks",
	"accounts-daemon", "colord", "fwupd", "gdm", "lightdm", "sddm", "login",
	"getty", "agetty", "su", "sudo", "ssh", "sshd", "rsyslog", "journald",
	"logind", "networkmanager", "wpa_supplicant", "dhclient", "thermald",
	"irqbalance", "snapd", "flatpak", "packagekit", "apt", "dnf", "yum",
	"pacman", "zypper",
}

var desktopKeywords = []string{
	"gnome", "kde", "plasma", "xfce", "mate", "cinnamon", "lxde", "lxqt", "i3",
	"sway", "hyprland", "awesome", "bspwm", "dwm", "openbox", "fluxbox", "xorg",
	"x11", "wayland", "mutter", "kwin", "picom", "compton", "compositor",
	"nautilus", "dolphin", "thunar", "nemo", "caja", "pcmanfm", "explorer",
	"finder", "gvfs", "tracker", "baloo", "mimeapps", "xdg-",
}

var browserKeywords = []string{
	"firefox", "chrome", "chromium", "brave", "edge", "safari", "opera",
	"vivaldi", "librewolf", "waterfox", "tor-browser", "qutebrowser",
	"web-content", "webextension", "gpu-process",
}

var developmentKeywords = []string{
	"code", "vscode", "codium", "vim", "nvim", "neovim", "emacs", "sublime",
	"atom", "jetbrains", "idea", "pycharm", "webstorm", "clion", "rider",
	"goland", "rust-analyzer", "gopls", "clangd", "pylsp", "tsserver", "node",
	"npm", "yarn", "pnpm", "cargo", "rustc", "gcc", "g++", "clang", "make",
	"cmake", "ninja", "git", "gh", "gdb", "lldb", "valgrind", "strace",
	"ltrace", "perf", "htop", "btop", "top", "docker-compose", "kubectl",
}

var aiMlKeywords = []string{
	"python", "python3", "jupyter", "ipython", "conda", "pip", "poetry", "pdm",
	"uv", "ruff", "mypy",
}

var mediaKeywords = []string{
	"vlc", "mpv", "mplayer", "totem", "celluloid", "parole", "rhythmbox",
	"spotify", "audacious", "clementine", "lollypop", "gimp", "inkscape",
	"krita", "blender", "kdenlive", "shotcut", "obs", "ffmpeg", "handbrake",
	"audacity", "ardour", "lmms", "darktable", "rawtherapee", "digikam",
	"shotwell", "eog", "gwenview", "feh", "sxiv", "mpd", "pulseaudio",
	"pipewire", "wireplumber", "alsa", "jack",
}

var communicationKeywords = []string{
	"discord", "slack", "teams", "zoom", "skype", "telegram", "signal",
	"element", "matrix", "thunderbird", "evolution", "geary", "mutt",
	"neomutt", "weechat", "irssi", "hexchat",
}

var productivityKeywords = []string{
	"libreoffice", "soffice", "writer", "calc", "impress", "obsidian",
	"notion", "joplin", "simplenote", "standard-notes", "zettlr", "logseq",
	"roam", "okular", "evince", "zathura", "calibre", "foliate",
	"gnome-calendar", "gnome-contacts",
}

var containerKeywords = []string{
	"docker", "containerd", "runc", "cri-o", "podman", "buildah", "skopeo",
	"kubernetes", "kubelet", "k3s", "k8s", "minikube", "qemu", "kvm",
	"libvirt", "virt-manager", "virtualbox", "vmware", "vagrant", "lxc",
	"lxd", "incus", "systemd-nspawn",
}

var networkKeywords = []string{
	"nginx", "apache", "httpd", "caddy", "traefik", "haproxy", "squid",
	"dnsmasq", "bind", "named", "unbound", "pihole", "openvpn", "wireguard",
	"iptables", "nftables", "firewalld", "ufw", "fail2ban", "snort",
	"suricata", "wireshark", "tcpdump", "nmap", "curl", "wget", "rsync",
	"syncthing", "rclone",
}

var databaseKeywords = []string{
	"postgres", "postgresql", "mysql", "mariadb", "sqlite", "mongodb",
	"redis", "memcached", "elasticsearch", "opensearch", "cassandra",
	"couchdb", "influxdb", "clickhouse", "duckdb",
}

var gamingKeywords = []string{
	"steam", "steamwebhelper", "game", "unity", "unreal", "godot", "wine",
	"proton", "lutris", "heroic", "bottles", "gamescope", "mangohud", "gamemode",
}

var shellKeywords = []string{
	"bash", "zsh", "fish", "sh", "dash", "ksh", "tcsh", "csh", "powershell",
	"pwsh", "cmd", "terminal", "konsole", "gnome-terminal", "alacritty",
	"kitty", "wezterm", "foot", "tilix", "terminator", "tmux", "screen", "byobu",
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// Classify assigns a ProcessCategory from the case-folded name, the owning
// user (if known), and whether the process currently holds GPU usage.
func Classify(name string, user string, isGPUProcess bool) entities.ProcessCategory {
	lower := strings.ToLower(name)

	if isGPUProcess {
		if matchesAny(lower, gpuAiMlKeywords) {
			return entities.CategoryAiMl
		}
		if matchesAny(lower, gpuGamingKeywords) {
			return entities.CategoryGaming
		}
		return entities.CategoryGpuCompute
	}

	type rule struct {
		category entities.ProcessCategory
		keywords []string
	}
	rules := []rule{
		{entities.CategorySystem, systemKeywords},
		{entities.CategoryService, serviceKeywords},
		{entities.CategoryDesktop, desktopKeywords},
		{entities.CategoryBrowser, browserKeywords},
		{entities.CategoryDevelopment, developmentKeywords},
		{entities.CategoryAiMl, aiMlKeywords},
		{entities.CategoryMedia, mediaKeywords},
		{entities.CategoryCommunication, communicationKeywords},
		{entities.CategoryProductivity, productivityKeywords},
		{entities.CategoryContainer, containerKeywords},
		{entities.CategoryNetwork, networkKeywords},
		{entities.CategoryDatabase, databaseKeywords},
		{entities.CategoryGaming, gamingKeywords},
		{entities.CategoryShell, shellKeywords},
	}
	for _, r := range rules {
		if matchesAny(lower, r.keywords) {
			return r.category
		}
	}

	lowerUser := strings.ToLower(user)
	if lowerUser == "root" || lowerUser == "system" || strings.HasPrefix(lowerUser, "_") {
		return entities.CategoryService
	}
	return entities.CategoryUnknown
}
