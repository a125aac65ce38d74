package welcome

const bannerArt = ` _____                _     __  __       _
|_   _|__  __ _  ___| |__ |  \/  | __ _| |_ ___
  | |/ _ \/ _` + "`" + ` |/ __| '_ \| |\/| |/ _` + "`" + ` | __/ _ \
  | |  __/ (_| | (__| | | | |  | | (_| | ||  __/
  |_|\___|\__,_|\___|_| |_|_|  |_|\__,_|\__\___|`
